// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenryalonzo/eventdev/internal/core/event"
)

// fixtureEvents builds a small directory with distinct titles, tags, dates,
// and creation times.
func fixtureEvents() []*event.Event {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return []*event.Event{
		{
			ID:          "01",
			Title:       "React Conf",
			Description: "The annual React conference",
			Location:    "San Francisco",
			Tags:        []string{"conference", "react"},
			Date:        "2024-05-10",
			CreatedAt:   base,
		},
		{
			ID:          "02",
			Title:       "Vue Meetup",
			Description: "Casual evening meetup",
			Location:    "Berlin",
			Tags:        []string{"meetup", "vue"},
			Date:        "2024-03-02",
			CreatedAt:   base.Add(24 * time.Hour),
		},
		{
			ID:          "03",
			Title:       "Go Hackathon",
			Description: "48 hours of Go",
			Location:    "Remote",
			Tags:        []string{"hackathon", "go"},
			Date:        "2024-09-20",
			CreatedAt:   base.Add(48 * time.Hour),
		},
	}
}

func ids(events []*event.Event) []string {
	result := make([]string, 0, len(events))
	for _, record := range events {
		result = append(result, record.ID)
	}
	return result
}

/*
TestRun_Defaults verifies the identity query: blank search, filter "all",
default sort returns every event newest first.
*/
func TestRun_Defaults(t *testing.T) {
	events := fixtureEvents()

	result := event.Run(events, event.Query{Search: "", Filter: "all", Sort: ""})

	assert.Equal(t, []string{"03", "02", "01"}, ids(result))
	// Input order is untouched.
	assert.Equal(t, "01", events[0].ID)
}

/*
TestRun_Search covers the case-insensitive substring match across title,
description, location, and tags.
*/
func TestRun_Search(t *testing.T) {
	events := fixtureEvents()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title_case_insensitive", "react", []string{"01"}},
		{"description", "casual", []string{"02"}},
		{"location", "francisco", []string{"01"}},
		{"tag", "hackathon", []string{"03"}},
		{"whitespace_is_noop", "   ", []string{"03", "02", "01"}},
		{"no_match", "elixir", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := event.Run(events, event.Query{Search: tt.search, Filter: event.FilterAll})
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

/*
TestRun_Filter covers category filtering via tag containment.
*/
func TestRun_Filter(t *testing.T) {
	events := fixtureEvents()

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"all_is_noop", "all", []string{"03", "02", "01"}},
		{"conference", "conference", []string{"01"}},
		{"meetup", "meetup", []string{"02"}},
		{"case_insensitive", "HACKATHON", []string{"03"}},
		{"unknown_category", "workshop", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := event.Run(events, event.Query{Filter: tt.filter})
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

/*
TestRun_SearchAndFilterConjunctive checks that search and filter both apply.
*/
func TestRun_SearchAndFilterConjunctive(t *testing.T) {
	events := fixtureEvents()

	// "go" the search term matches event 03; "meetup" the category matches 02.
	result := event.Run(events, event.Query{Search: "go", Filter: "meetup"})
	assert.Empty(t, result)

	result = event.Run(events, event.Query{Search: "48 hours", Filter: "hackathon"})
	assert.Equal(t, []string{"03"}, ids(result))
}

/*
TestRun_Sort covers every sort key.
*/
func TestRun_Sort(t *testing.T) {
	events := fixtureEvents()

	tests := []struct {
		name string
		sort string
		want []string
	}{
		{"newest_default", "", []string{"03", "02", "01"}},
		{"newest", event.SortNewest, []string{"03", "02", "01"}},
		{"oldest", event.SortOldest, []string{"01", "02", "03"}},
		{"name_asc", event.SortNameAsc, []string{"03", "01", "02"}},
		{"name_desc", event.SortNameDesc, []string{"02", "01", "03"}},
		{"date_asc", event.SortDateAsc, []string{"02", "01", "03"}},
		{"date_desc", event.SortDateDesc, []string{"03", "01", "02"}},
		{"unknown_falls_back_to_newest", "popularity", []string{"03", "02", "01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := event.Run(events, event.Query{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

/*
TestRun_SortNameCaseInsensitive documents the title comparison semantics:
lowercase and uppercase titles interleave alphabetically.
*/
func TestRun_SortNameCaseInsensitive(t *testing.T) {
	events := []*event.Event{
		{ID: "b", Title: "Beta"},
		{ID: "a", Title: "alpha"},
		{ID: "g", Title: "Gamma"},
	}

	result := event.Run(events, event.Query{Sort: event.SortNameAsc})
	assert.Equal(t, []string{"a", "b", "g"}, ids(result))
}

/*
TestRun_SortStability verifies that equal keys keep their input order.
*/
func TestRun_SortStability(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []*event.Event{
		{ID: "first", Title: "Same Day A", Date: "2024-06-01", CreatedAt: createdAt},
		{ID: "second", Title: "Same Day B", Date: "2024-06-01", CreatedAt: createdAt},
		{ID: "third", Title: "Same Day C", Date: "2024-06-01", CreatedAt: createdAt},
	}

	result := event.Run(events, event.Query{Sort: event.SortDateAsc})
	require.Len(t, result, 3)
	assert.Equal(t, []string{"first", "second", "third"}, ids(result))

	result = event.Run(events, event.Query{Sort: event.SortNewest})
	assert.Equal(t, []string{"first", "second", "third"}, ids(result))
}

// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event

import (
	"slices"
	"strings"
)

// # Query Pipeline

// Sort keys accepted by the listing endpoint.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortNameAsc  = "name-asc"
	SortNameDesc = "name-desc"
	SortDateAsc  = "date-asc"
	SortDateDesc = "date-desc"
)

// FilterAll disables category filtering.
const FilterAll = "all"

// Query holds the three independent listing parameters.
type Query struct {
	Search string `json:"q"`
	Filter string `json:"filter"` // Category id, matched against tags
	Sort   string `json:"sort"`
}

/*
Run executes the full pipeline over an in-memory event list: search, then
filter, then sort. The input slice is never mutated.

Description: Search is a case-insensitive substring match against title,
description, location, and every tag; blank search is a no-op. Filter keeps
events where at least one tag contains the category id (FilterAll is a
no-op). Search and filter are conjunctive. Sort is stable so equal keys keep
their relative order; an unknown key falls back to newest.

Parameters:
  - events: []*Event (Full fetched list)
  - query: Query

Returns:
  - []*Event: Filtered, ordered view of the input
*/
func Run(events []*Event, query Query) []*Event {
	result := make([]*Event, 0, len(events))

	search := strings.ToLower(strings.TrimSpace(query.Search))
	filter := strings.ToLower(strings.TrimSpace(query.Filter))

	for _, candidate := range events {
		if search != "" && !matchesSearch(candidate, search) {
			continue
		}
		if filter != "" && filter != FilterAll && !matchesFilter(candidate, filter) {
			continue
		}
		result = append(result, candidate)
	}

	sortEvents(result, query.Sort)

	return result
}

// matchesSearch reports whether the lowercased needle occurs in the event's
// title, description, location, or any tag.
func matchesSearch(event *Event, needle string) bool {
	if strings.Contains(strings.ToLower(event.Title), needle) ||
		strings.Contains(strings.ToLower(event.Description), needle) ||
		strings.Contains(strings.ToLower(event.Location), needle) {
		return true
	}
	for _, tag := range event.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// matchesFilter reports whether any tag contains the category id.
func matchesFilter(event *Event, category string) bool {
	for _, tag := range event.Tags {
		if strings.Contains(strings.ToLower(tag), category) {
			return true
		}
	}
	return false
}

// sortEvents orders the slice in place by the given key.
// Title comparison is case-insensitive; dates compare lexically, which is
// correct for the canonical YYYY-MM-DD form.
func sortEvents(events []*Event, key string) {
	switch key {
	case SortOldest:
		slices.SortStableFunc(events, func(a, b *Event) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortNameAsc:
		slices.SortStableFunc(events, func(a, b *Event) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	case SortNameDesc:
		slices.SortStableFunc(events, func(a, b *Event) int {
			return strings.Compare(strings.ToLower(b.Title), strings.ToLower(a.Title))
		})
	case SortDateAsc:
		slices.SortStableFunc(events, func(a, b *Event) int {
			return strings.Compare(a.Date, b.Date)
		})
	case SortDateDesc:
		slices.SortStableFunc(events, func(a, b *Event) int {
			return strings.Compare(b.Date, a.Date)
		})
	default: // SortNewest
		slices.SortStableFunc(events, func(a, b *Event) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

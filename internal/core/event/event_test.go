// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenryalonzo/eventdev/internal/core/event"
)

/*
TestNormalizeDate checks date canonicalization across accepted layouts.
*/
func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		isValid bool
	}{
		{"rfc3339", "2024-03-15T10:00:00Z", "2024-03-15", true},
		{"iso_date", "2024-03-15", "2024-03-15", true},
		{"datetime", "2024-03-15 18:30:00", "2024-03-15", true},
		{"us_slash", "03/15/2024", "2024-03-15", true},
		{"not_a_date", "not-a-date", "", false},
		{"empty", "", "", false},
		{"month_13", "2024-13-01", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := event.NormalizeDate(tt.input)

			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, event.ErrInvalidDate)
			}
		})
	}
}

/*
TestNormalizeDate_UTCConversion verifies that offset timestamps canonicalize
to the UTC calendar day.
*/
func TestNormalizeDate_UTCConversion(t *testing.T) {
	// 23:30 at -0300 is already the next day in UTC.
	got, err := event.NormalizeDate("2024-03-15T23:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-16", got)
}

/*
TestValidateCollections covers the non-empty invariants on tags and agenda.
*/
func TestValidateCollections(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		agenda  []string
		wantErr error
	}{
		{"both_present", []string{"go"}, []string{"Opening keynote"}, nil},
		{"empty_tags", nil, []string{"Opening keynote"}, event.ErrEmptyTags},
		{"empty_agenda", []string{"go"}, nil, event.ErrEmptyAgenda},
		{"both_empty_tags_first", nil, nil, event.ErrEmptyTags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := event.ValidateCollections(tt.tags, tt.agenda)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

/*
TestMode_Valid checks the participation mode enum.
*/
func TestMode_Valid(t *testing.T) {
	assert.True(t, event.ModeOnline.Valid())
	assert.True(t, event.ModeOffline.Valid())
	assert.True(t, event.ModeHybrid.Valid())
	assert.False(t, event.Mode("in-person").Valid())
	assert.False(t, event.Mode("").Valid())
}

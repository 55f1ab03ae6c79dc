// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kenryalonzo/eventdev/pkg/slug"
)

/*
TestDerive checks the transformation pipeline against representative titles.
*/
func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple_title", "React Conf 2024!", "react-conf-2024"},
		{"already_slugified", "react-conf-2024", "react-conf-2024"},
		{"mixed_case", "Vue Meetup", "vue-meetup"},
		{"whitespace_runs", "Go    Hack   Night", "go-hack-night"},
		{"surrounding_space", "  DevFest Berlin  ", "devfest-berlin"},
		{"apostrophe_stripped", "Rock'n'Roll Summit", "rocknroll-summit"},
		{"accents_removed", "Café Conférence", "cafe-conference"},
		{"hyphen_runs", "micro -- services", "micro-services"},
		{"underscore_kept", "event_dev meetup", "event_dev-meetup"},
		{"punctuation_only", "   ---   ", ""},
		{"empty_input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Derive(tt.title))
		})
	}
}

/*
TestDerive_Idempotent verifies that deriving from an already derived slug is
a fixed point for every input.
*/
func TestDerive_Idempotent(t *testing.T) {
	titles := []string{
		"React Conf 2024!",
		"Vue Meetup",
		"  --weird--  input!!  ",
		"Café Conférence",
		"",
	}

	for _, title := range titles {
		once := slug.Derive(title)
		assert.Equal(t, once, slug.Derive(once), "title %q", title)
	}
}

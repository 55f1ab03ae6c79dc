// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
	"github.com/kenryalonzo/eventdev/internal/platform/constants"
)

// completeForm returns a form that passes every submit check.
func completeForm() *event.FormState {
	return &event.FormState{
		Title:       "React Conf 2024",
		Description: "The annual React conference",
		Overview:    "Two days of talks and workshops",
		Venue:       "Moscone Center",
		Location:    "San Francisco",
		Date:        "2024-05-10",
		Time:        "9:00 AM",
		Mode:        "offline",
		Audience:    "Frontend developers",
		Organizer:   "React Team",
		Tags:        []string{"conference", "react"},
		Agenda:      []string{"Opening keynote", "Workshops"},
	}
}

func pngUpload() *event.ImageUpload {
	return &event.ImageUpload{
		Filename:    "banner.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4E, 0x47},
	}
}

/*
TestFormState_ValidateSubmit_Order verifies that checks run in submission
order and the first failure wins.
*/
func TestFormState_ValidateSubmit_Order(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(form *event.FormState) *event.ImageUpload
		message string
	}{
		{
			"zero_tags_first",
			func(form *event.FormState) *event.ImageUpload {
				form.Tags = nil
				form.Agenda = nil // agenda also empty, but tags message wins
				return nil
			},
			"Please add at least one tag",
		},
		{
			"zero_agenda_second",
			func(form *event.FormState) *event.ImageUpload {
				form.Agenda = nil
				return nil // image also missing, but agenda message wins
			},
			"Please add at least one agenda item",
		},
		{
			"missing_image_third",
			func(form *event.FormState) *event.ImageUpload {
				form.Title = "" // title also blank, but image message wins
				return nil
			},
			"Please select an event image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := completeForm()
			image := tt.mutate(form)

			err := form.ValidateSubmit(image)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

/*
TestFormState_ValidateSubmit_RequiredText checks the text field pass after
the collection and image checks.
*/
func TestFormState_ValidateSubmit_RequiredText(t *testing.T) {
	form := completeForm()
	form.Overview = "   "
	form.Normalize()

	err := form.ValidateSubmit(pngUpload())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.NotEmpty(t, ae.Details)
	assert.Equal(t, event.FieldOverview, ae.Details[0].Field)
}

/*
TestFormState_ValidateSubmit_Mode rejects modes outside the enum.
*/
func TestFormState_ValidateSubmit_Mode(t *testing.T) {
	form := completeForm()
	form.Mode = "in-person"

	err := form.ValidateSubmit(pngUpload())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, event.FieldMode, ae.Details[0].Field)
}

/*
TestFormState_ValidateSubmit_Complete passes with every field present.
*/
func TestFormState_ValidateSubmit_Complete(t *testing.T) {
	assert.NoError(t, completeForm().ValidateSubmit(pngUpload()))
}

/*
TestImageUpload_Validate covers the MIME prefix and size constraints.
*/
func TestImageUpload_Validate(t *testing.T) {
	t.Run("accepts_image_at_cap", func(t *testing.T) {
		upload := &event.ImageUpload{
			Filename:    "banner.jpg",
			ContentType: "image/jpeg",
			Data:        bytes.Repeat([]byte{0xFF}, constants.MaxImageBytes),
		}
		assert.NoError(t, upload.Validate())
	})

	t.Run("rejects_non_image_mime", func(t *testing.T) {
		upload := &event.ImageUpload{
			Filename:    "notes.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF"),
		}
		err := upload.Validate()
		require.Error(t, err)
		assert.Equal(t, 400, apperr.As(err).HTTPStatus)
	})

	t.Run("rejects_over_five_mib", func(t *testing.T) {
		upload := &event.ImageUpload{
			Filename:    "huge.png",
			ContentType: "image/png",
			Data:        bytes.Repeat([]byte{0xFF}, constants.MaxImageBytes+1),
		}
		err := upload.Validate()
		require.Error(t, err)
		assert.Equal(t, 413, apperr.As(err).HTTPStatus)
	})
}

/*
TestFormState_Normalize trims every text field.
*/
func TestFormState_Normalize(t *testing.T) {
	form := &event.FormState{
		Title: "  React Conf  ",
		Time:  "\t9:00 AM\n",
		Mode:  " offline ",
	}

	form.Normalize()

	assert.Equal(t, "React Conf", form.Title)
	assert.Equal(t, "9:00 AM", form.Time)
	assert.Equal(t, "offline", form.Mode)
}

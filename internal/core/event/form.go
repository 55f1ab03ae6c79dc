// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event

import (
	"strings"

	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
	"github.com/kenryalonzo/eventdev/internal/platform/constants"
)

// # Creation Form

// FormState holds every non-image field of the event creation form.
// It is the unit of draft persistence: the draft store serializes it as JSON
// and restores it verbatim, with the image always re-selected by the user.
type FormState struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
	Agenda      []string `json:"agenda"`
}

// ImageUpload carries the raw bytes and declared MIME type of the selected
// event image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Normalize trims every text field in place.
func (form *FormState) Normalize() {
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	form.Overview = strings.TrimSpace(form.Overview)
	form.Venue = strings.TrimSpace(form.Venue)
	form.Location = strings.TrimSpace(form.Location)
	form.Date = strings.TrimSpace(form.Date)
	form.Time = strings.TrimSpace(form.Time)
	form.Mode = strings.TrimSpace(form.Mode)
	form.Audience = strings.TrimSpace(form.Audience)
	form.Organizer = strings.TrimSpace(form.Organizer)
}

/*
ValidateSubmit runs the ordered submission checks. The first failing check
produces the response message; later checks are not evaluated.

Order: tags, agenda, image, then the required text fields.

Parameters:
  - image: *ImageUpload (nil when no file was attached)

Returns:
  - error: 400 AppError carrying the failing field and its message
*/
func (form *FormState) ValidateSubmit(image *ImageUpload) error {
	if len(form.Tags) == 0 {
		return apperr.ValidationError("Please add at least one tag",
			apperr.FieldError{Field: FieldTags, Message: "Please add at least one tag"})
	}

	if len(form.Agenda) == 0 {
		return apperr.ValidationError("Please add at least one agenda item",
			apperr.FieldError{Field: FieldAgenda, Message: "Please add at least one agenda item"})
	}

	if image == nil || len(image.Data) == 0 {
		return apperr.ValidationError("Please select an event image",
			apperr.FieldError{Field: FieldImage, Message: "Please select an event image"})
	}

	if err := image.Validate(); err != nil {
		return err
	}

	required := []struct {
		field string
		value string
	}{
		{FieldTitle, form.Title},
		{FieldDescription, form.Description},
		{FieldOverview, form.Overview},
		{FieldVenue, form.Venue},
		{FieldLocation, form.Location},
		{FieldDate, form.Date},
		{FieldTime, form.Time},
		{FieldMode, form.Mode},
		{FieldAudience, form.Audience},
		{FieldOrganizer, form.Organizer},
	}
	for _, check := range required {
		if strings.TrimSpace(check.value) == "" {
			return apperr.ValidationError("Please fill in the "+check.field+" field",
				apperr.FieldError{Field: check.field, Message: "This field is required"})
		}
	}

	if !Mode(form.Mode).Valid() {
		return apperr.ValidationError("Event mode must be online, offline or hybrid",
			apperr.FieldError{Field: FieldMode, Message: "Must be online, offline or hybrid"})
	}

	return nil
}

/*
Validate enforces the image constraints before any storage write.

Returns:
  - error: 400 on a non-image MIME type, 413 when over the 5 MiB cap
*/
func (upload *ImageUpload) Validate() error {
	if !strings.HasPrefix(upload.ContentType, constants.ImageContentTypePrefix) {
		return apperr.ValidationError("Event image must be an image file",
			apperr.FieldError{Field: FieldImage, Message: "Must be an image file"})
	}

	if len(upload.Data) > constants.MaxImageBytes {
		return apperr.PayloadTooLarge("Event image must be 5MB or smaller")
	}

	return nil
}

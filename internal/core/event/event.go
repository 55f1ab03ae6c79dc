// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

/*
Package event manages the developer event directory.

It owns the canonical event record, its derivation and normalization rules,
the pure query pipeline behind the public listing, and the creation workflow.

# Core Responsibility

  - Record: Defines the [Event] entity and the [Mode] enum.
  - Normalization: Date canonicalization to ISO YYYY-MM-DD on the write path.
  - Querying: Pure search/filter/sort over an in-memory event list.
  - Creation: Multipart form intake with ordered validation and image upload.

Slug derivation lives in pkg/slug; this package invokes it on every create so
a title always maps to exactly one canonical slug.
*/
package event

import (
	"errors"
	"time"
)

// # Event Enums

// Mode describes how attendees participate in an event.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeHybrid  Mode = "hybrid"
)

// Valid reports whether the mode is one of the known variants.
func (mode Mode) Valid() bool {
	switch mode {
	case ModeOnline, ModeOffline, ModeHybrid:
		return true
	}
	return false
}

// # Core Entities

// Event represents a single schedulable public event listing.
type Event struct {
	ID          string    `json:"id"` // UUIDv7
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"` // Public URL of the stored image
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"` // ISO YYYY-MM-DD
	Time        string    `json:"time"` // Free text, trimmed
	Mode        Mode      `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Model Errors

var (
	// ErrInvalidDate signals a date input that does not parse as a calendar date.
	ErrInvalidDate = errors.New("event date is not a valid calendar date")

	// ErrEmptyTags signals an event without a single tag.
	ErrEmptyTags = errors.New("event must have at least one tag")

	// ErrEmptyAgenda signals an event without a single agenda item.
	ErrEmptyAgenda = errors.New("event must have at least one agenda item")

	// ErrEmptyTime signals a time field that is blank after trimming.
	ErrEmptyTime = errors.New("event time must not be empty")

	// ErrEmptySlug signals a title whose derived slug is empty
	// (punctuation-only titles).
	ErrEmptySlug = errors.New("event title yields an empty slug")
)

// dateLayouts are the accepted input formats for event dates, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

/*
NormalizeDate parses an event date in any accepted layout and canonicalizes
it to ISO YYYY-MM-DD in UTC.

Parameters:
  - input: string (Raw date from the form or API)

Returns:
  - string: Canonical YYYY-MM-DD
  - error: ErrInvalidDate when no layout matches
*/
func NormalizeDate(input string) (string, error) {
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, input)
		if err == nil {
			return parsed.UTC().Format("2006-01-02"), nil
		}
	}
	return "", ErrInvalidDate
}

/*
ValidateCollections enforces the non-empty invariants on the record's
set-like fields.

Parameters:
  - tags: []string
  - agenda: []string

Returns:
  - error: ErrEmptyTags or ErrEmptyAgenda on the first violated invariant
*/
func ValidateCollections(tags, agenda []string) error {
	if len(tags) == 0 {
		return ErrEmptyTags
	}
	if len(agenda) == 0 {
		return ErrEmptyAgenda
	}
	return nil
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldOverview    = "overview"
	FieldVenue       = "venue"
	FieldLocation    = "location"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldMode        = "mode"
	FieldAudience    = "audience"
	FieldOrganizer   = "organizer"
	FieldTags        = "tags"
	FieldAgenda      = "agenda"
	FieldImage       = "image"
)

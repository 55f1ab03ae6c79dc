// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

/*
Package booking manages email registrations against events.

It owns the [Booking] record and its reference guard: a booking can only be
created for an event that exists in storage at save time. The guard is a
point-in-time read, not a foreign key; an event deleted between the check
and the write leaves the booking as a historical record.

# Core Responsibility

  - Record: Defines the [Booking] entity.
  - Reference guard: Existence check against the event directory per save.
  - Confirmation: Best-effort email after a successful registration.
*/
package booking

import "time"

// # Core Entities

// Booking represents an email's registration against one event.
// The event slug is denormalized so listings need no join.
type Booking struct {
	ID        string    `json:"id"` // UUIDv7
	EventID   string    `json:"event_id"`
	Slug      string    `json:"slug"` // Denormalized from the event
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldEventID = "event_id"
	FieldEmail   = "email"
)

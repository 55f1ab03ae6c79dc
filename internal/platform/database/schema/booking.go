package schema

// BookingTable represents the 'core.booking' table
type BookingTable struct {
	Table     string
	ID        string
	EventID   string
	Slug      string
	Email     string
	CreatedAt string
	UpdatedAt string
}

// Booking is the schema definition for core.booking
var Booking = BookingTable{
	Table:     "core.booking",
	ID:        "id",
	EventID:   "eventid",
	Slug:      "slug",
	Email:     "email",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t BookingTable) Columns() []string {
	return []string{t.ID, t.EventID, t.Slug, t.Email, t.CreatedAt, t.UpdatedAt}
}

package schema

// EventTable represents the 'core.event' table
type EventTable struct {
	Table       string
	ID          string
	Slug        string
	Title       string
	Description string
	Overview    string
	Image       string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Agenda      string
	Organizer   string
	Tags        string
	CreatedAt   string
	UpdatedAt   string
}

// Event is the schema definition for core.event
var Event = EventTable{
	Table:       "core.event",
	ID:          "id",
	Slug:        "slug",
	Title:       "title",
	Description: "description",
	Overview:    "overview",
	Image:       "image",
	Venue:       "venue",
	Location:    "location",
	Date:        "eventdate",
	Time:        "eventtime",
	Mode:        "mode",
	Audience:    "audience",
	Agenda:      "agenda",
	Organizer:   "organizer",
	Tags:        "tags",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t EventTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Description, t.Overview, t.Image, t.Venue,
		t.Location, t.Date, t.Time, t.Mode, t.Audience, t.Agenda, t.Organizer,
		t.Tags, t.CreatedAt, t.UpdatedAt,
	}
}

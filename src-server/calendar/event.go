package calendar

import (
	"time"
)

// Event is one entry on the calendar. ID is assigned once at creation
// and never changes; Start/End are absolute local timestamps with
// End >= Start (equal only for zero-duration markers). All-day events
// are normalized to span the first through last instant of their
// owning day.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	IsAllDay    bool      `json:"isAllDay"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
}

func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Draft is the add-event form payload, everything but the id.
type Draft struct {
	Title       string
	Start       time.Time
	End         time.Time
	IsAllDay    bool
	Description string
	Color       string
}

// Patch carries the fields to replace on an existing event; nil fields
// are left untouched.
type Patch struct {
	Title       *string
	Start       *time.Time
	End         *time.Time
	IsAllDay    *bool
	Description *string
	Color       *string
}

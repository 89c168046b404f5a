package calendar

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoHour marks an empty hour selection.
const NoHour = -1

// IDSource hands out event ids. Injectable so tests can supply
// deterministic ids instead of uuids.
type IDSource interface {
	NewID() string
}

type uuidSource struct{}

func (uuidSource) NewID() string { return uuid.NewString() }

// State is everything the controller owns for one browsing session.
// SelectedHour/SelectedEndHour are NoHour when nothing is selected;
// they only carry meaning outside month view.
type State struct {
	ReferenceDate   time.Time `json:"referenceDate"`
	SelectedDate    time.Time `json:"selectedDate"`
	SelectedHour    int       `json:"selectedHour"`
	SelectedEndHour int       `json:"selectedEndHour"`
	ViewMode        ViewMode  `json:"viewMode"`
	FormOpen        bool      `json:"formOpen"`
	Events          []Event   `json:"events"`
}

// Controller mediates every mutation of one session's calendar state.
// It is the collection's only writer; renderers read consistent
// snapshots because every mutation is synchronous. Not safe for
// concurrent use, callers serialize access.
type Controller struct {
	ids   IDSource
	state State
}

type ControllerOption func(*Controller)

// WithIDSource replaces the uuid generator, for deterministic tests.
func WithIDSource(ids IDSource) ControllerOption {
	return func(c *Controller) { c.ids = ids }
}

// NewController starts a session pivoted on the given date in month
// view, with an empty event collection.
func NewController(now time.Time, opts ...ControllerOption) *Controller {
	c := &Controller{
		ids: uuidSource{},
		state: State{
			ReferenceDate:   now,
			SelectedDate:    now,
			SelectedHour:    NoHour,
			SelectedEndHour: NoHour,
			ViewMode:        ViewModeMonth,
			Events:          make([]Event, 0),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot with its own copy of the event collection.
func (c *Controller) State() State {
	snapshot := c.state
	snapshot.Events = append([]Event(nil), c.state.Events...)
	return snapshot
}

// VisibleRange derives the days to render for the current state.
func (c *Controller) VisibleRange() []time.Time {
	return VisibleRange(c.state.ReferenceDate, c.state.ViewMode)
}

// SetViewMode switches the view; switching into day view pins the
// reference date to the selected date. Idempotent.
func (c *Controller) SetViewMode(mode ViewMode) {
	if !mode.Valid() || mode == c.state.ViewMode {
		return
	}
	c.state.ViewMode = mode
	if mode == ViewModeDay {
		c.state.ReferenceDate = c.state.SelectedDate
	}
}

// Navigate moves the reference date one unit of the current view
// granularity; dir is +1 or -1.
func (c *Controller) Navigate(dir int) {
	c.state.ReferenceDate = Advance(c.state.ReferenceDate, c.state.ViewMode, dir)
}

// SelectCell highlights a cell and seeds the add-event form. Pass
// NoHour for plain date selection; a real hour also selects hour+1 as
// the form's end hour.
func (c *Controller) SelectCell(date time.Time, hour int) {
	c.state.SelectedDate = date
	if hour == NoHour {
		return
	}
	c.state.SelectedHour = hour
	c.state.SelectedEndHour = hour + 1
}

func (c *Controller) OpenAddEventForm() {
	c.state.FormOpen = true
}

// CloseAddEventForm hides the form and clears the hour selection.
func (c *Controller) CloseAddEventForm() {
	c.state.FormOpen = false
	c.state.SelectedHour = NoHour
	c.state.SelectedEndHour = NoHour
}

// AddEvent validates the draft, assigns a fresh id and appends the
// event. All-day drafts are forced to full-day bounds of the start's
// owning day; otherwise end must not precede start (equal is allowed
// for zero-duration markers).
func (c *Controller) AddEvent(draft Draft) (Event, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return Event{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if draft.IsAllDay {
		draft.Start = StartOfDay(draft.Start)
		draft.End = EndOfDay(draft.Start)
	} else if draft.End.Before(draft.Start) {
		return Event{}, &ValidationError{Field: "end", Reason: "must not be before start"}
	}

	event := Event{
		ID:          c.ids.NewID(),
		Title:       draft.Title,
		Start:       draft.Start,
		End:         draft.End,
		IsAllDay:    draft.IsAllDay,
		Description: draft.Description,
		Color:       draft.Color,
	}
	c.state.Events = append(c.state.Events, event)
	return event, nil
}

// UpdateEvent replaces the fields present in the patch on the event
// with the given id. Unknown ids are an error, not a silent no-op.
func (c *Controller) UpdateEvent(id string, patch Patch) (Event, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Event{}, &NotFoundError{EventID: id}
	}

	updated := c.state.Events[idx]
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Start != nil {
		updated.Start = *patch.Start
	}
	if patch.End != nil {
		updated.End = *patch.End
	}
	if patch.IsAllDay != nil {
		updated.IsAllDay = *patch.IsAllDay
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Color != nil {
		updated.Color = *patch.Color
	}

	if strings.TrimSpace(updated.Title) == "" {
		return Event{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if updated.IsAllDay {
		updated.Start = StartOfDay(updated.Start)
		updated.End = EndOfDay(updated.Start)
	} else if updated.End.Before(updated.Start) {
		return Event{}, &ValidationError{Field: "end", Reason: "must not be before start"}
	}

	c.state.Events[idx] = updated
	return updated, nil
}

// DuplicateEvent appends a copy of the event with the given id, moved
// to newStart with the original duration and a fresh id. The original
// stays untouched. Used by drag-and-drop.
func (c *Controller) DuplicateEvent(id string, newStart time.Time) (Event, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Event{}, &NotFoundError{EventID: id}
	}

	original := c.state.Events[idx]
	duplicate := original
	duplicate.ID = c.ids.NewID()
	duplicate.Start = newStart
	duplicate.End = newStart.Add(original.Duration())
	if duplicate.IsAllDay {
		duplicate.Start = StartOfDay(newStart)
		duplicate.End = EndOfDay(newStart)
	}
	c.state.Events = append(c.state.Events, duplicate)
	return duplicate, nil
}

func (c *Controller) indexOf(id string) int {
	for i, e := range c.state.Events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

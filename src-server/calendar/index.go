package calendar

import "time"

// EventsOnDay returns the events whose start falls on the given
// calendar day, in input order. All-day events match their owning day.
func EventsOnDay(events []Event, day time.Time) []Event {
	matched := make([]Event, 0)
	for _, e := range events {
		if SameDay(e.Start, day) {
			matched = append(matched, e)
		}
	}
	return matched
}

// EventsAtHour returns the events occupying the given hour slot on the
// given day, in input order. An event matches when its start falls
// inside the hour, or when its [start, end) interval contains the top
// of the hour; a long event occupying but not starting in the slot is
// still shown. All-day events never match an hour slot.
func EventsAtHour(events []Event, day time.Time, hour int) []Event {
	slotStart := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	slotEnd := slotStart.Add(time.Hour)

	matched := make([]Event, 0)
	for _, e := range events {
		if e.IsAllDay {
			continue
		}
		startsInSlot := !e.Start.Before(slotStart) && e.Start.Before(slotEnd)
		coversSlot := !slotStart.Before(e.Start) && slotStart.Before(e.End)
		if startsInSlot || coversSlot {
			matched = append(matched, e)
		}
	}
	return matched
}

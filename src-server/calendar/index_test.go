package calendar_test

import (
	"testing"
	"time"

	"dayplan/src-server/calendar"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestEventsAtHourSpanningEvent(t *testing.T) {
	// 09:30-11:15 must show up in the 09, 10 and 11 slots and nowhere else
	events := []calendar.Event{{
		ID:    "span",
		Title: "Deep work",
		Start: at(2024, time.April, 2, 9, 30),
		End:   at(2024, time.April, 2, 11, 15),
	}}

	d := day(2024, time.April, 2)
	for hour := 0; hour < 24; hour++ {
		got := calendar.EventsAtHour(events, d, hour)
		want := hour == 9 || hour == 10 || hour == 11
		if (len(got) == 1) != want {
			t.Error("wrong slot membership", "hour", hour, "got", len(got))
		}
	}

	// and on no other day
	for hour := 0; hour < 24; hour++ {
		if len(calendar.EventsAtHour(events, day(2024, time.April, 3), hour)) != 0 {
			t.Error("event leaked to the next day", "hour", hour)
		}
	}
}

func TestEventsAtHourExcludesAllDay(t *testing.T) {
	events := []calendar.Event{{
		ID:       "allday",
		Title:    "Offsite",
		Start:    calendar.StartOfDay(day(2024, time.April, 2)),
		End:      calendar.EndOfDay(day(2024, time.April, 2)),
		IsAllDay: true,
	}}
	for hour := 0; hour < 24; hour++ {
		if len(calendar.EventsAtHour(events, day(2024, time.April, 2), hour)) != 0 {
			t.Error("all-day event must never match an hour slot", hour)
		}
	}
	if len(calendar.EventsOnDay(events, day(2024, time.April, 2))) != 1 {
		t.Error("all-day event must match its owning day")
	}
}

func TestEventsOnDay(t *testing.T) {
	events := []calendar.Event{
		{ID: "a", Start: at(2024, time.April, 2, 9, 0), End: at(2024, time.April, 2, 10, 0)},
		{ID: "b", Start: at(2024, time.April, 3, 9, 0), End: at(2024, time.April, 3, 10, 0)},
		{ID: "c", Start: at(2024, time.April, 2, 23, 30), End: at(2024, time.April, 3, 0, 30)},
	}
	got := calendar.EventsOnDay(events, day(2024, time.April, 2))
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Error("day match should use the start's calendar day, in input order", got)
	}
}

func TestEventsAtHourStableOrder(t *testing.T) {
	events := []calendar.Event{
		{ID: "late", Start: at(2024, time.April, 2, 9, 45), End: at(2024, time.April, 2, 10, 0)},
		{ID: "early", Start: at(2024, time.April, 2, 9, 0), End: at(2024, time.April, 2, 9, 30)},
	}
	got := calendar.EventsAtHour(events, day(2024, time.April, 2), 9)
	if len(got) != 2 || got[0].ID != "late" || got[1].ID != "early" {
		t.Error("slot order must preserve insertion order, not time order", got)
	}
}

package calendar_test

import (
	"testing"
	"time"

	"dayplan/src-server/calendar"
)

func TestBuildMonthGrid(t *testing.T) {
	c := newTestController()
	if _, err := c.AddEvent(calendar.Draft{
		Title: "Planning",
		Start: at(2024, time.April, 10, 9, 0),
		End:   at(2024, time.April, 10, 10, 0),
	}); err != nil {
		t.Fatal(err)
	}
	c.SelectCell(day(2024, time.April, 10), calendar.NoHour)

	cells := calendar.BuildMonthGrid(c.State())
	if len(cells)%7 != 0 {
		t.Fatal("month grid should be whole weeks", len(cells))
	}

	var inMonth, selected, withEvents int
	for _, cell := range cells {
		if cell.InMonth {
			inMonth++
		}
		if cell.Selected {
			selected++
		}
		if len(cell.Events) > 0 {
			withEvents++
			if !calendar.SameDay(cell.Date, day(2024, time.April, 10)) {
				t.Error("event rendered on the wrong day", cell.Date)
			}
		}
	}
	if inMonth != 30 {
		t.Error("April has 30 in-month cells", inMonth)
	}
	if selected != 1 {
		t.Error("exactly one cell is selected", selected)
	}
	if withEvents != 1 {
		t.Error("exactly one cell carries the event", withEvents)
	}
}

func TestBuildWeekGrid(t *testing.T) {
	c := newTestController()
	c.SetViewMode(calendar.ViewModeWeek)
	if _, err := c.AddEvent(calendar.Draft{
		Title: "Sync",
		Start: at(2024, time.April, 1, 9, 30), // the reference Monday
		End:   at(2024, time.April, 1, 10, 0),
	}); err != nil {
		t.Fatal(err)
	}

	columns := calendar.BuildWeekGrid(c.State())
	if len(columns) != 7 {
		t.Fatal("week grid should have 7 columns", len(columns))
	}
	if len(columns[0].Hours) != 24 {
		t.Fatal("each column should have 24 hour cells", len(columns[0].Hours))
	}

	blocks := columns[0].Hours[9].Blocks
	if len(blocks) != 1 {
		t.Fatal("the event should sit in Monday's 9 o'clock cell", len(blocks))
	}
	if blocks[0].Box.Top != 0.5 {
		t.Error("a 9:30 start sits halfway down the cell", blocks[0].Box.Top)
	}
}

func TestBuildDayGridAllDay(t *testing.T) {
	c := newTestController()
	c.SelectCell(day(2024, time.April, 1), calendar.NoHour)
	c.SetViewMode(calendar.ViewModeDay)
	if _, err := c.AddEvent(calendar.Draft{
		Title:    "Offsite",
		Start:    day(2024, time.April, 1),
		End:      day(2024, time.April, 1),
		IsAllDay: true,
	}); err != nil {
		t.Fatal(err)
	}

	column := calendar.BuildDayGrid(c.State())
	if len(column.AllDay) != 1 {
		t.Error("all-day event should land in the all-day lane", len(column.AllDay))
	}
	for _, cell := range column.Hours {
		if len(cell.Blocks) != 0 {
			t.Error("all-day event must not appear in hour cells", cell.Hour)
		}
	}
}

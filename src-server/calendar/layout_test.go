package calendar_test

import (
	"math"
	"testing"
	"time"

	"dayplan/src-server/calendar"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayoutSlotThreeColliding(t *testing.T) {
	events := []calendar.Event{
		{ID: "a", Start: at(2024, time.April, 2, 9, 0), End: at(2024, time.April, 2, 10, 0)},
		{ID: "b", Start: at(2024, time.April, 2, 9, 15), End: at(2024, time.April, 2, 9, 45)},
		{ID: "c", Start: at(2024, time.April, 2, 9, 30), End: at(2024, time.April, 2, 11, 0)},
	}
	boxes := calendar.LayoutSlot(events)
	if len(boxes) != 3 {
		t.Fatal("expected a box per event", len(boxes))
	}
	wantLeft := []float64{0, 1.0 / 3, 2.0 / 3}
	for i, e := range events {
		box := boxes[e.ID]
		if !almostEqual(box.Width, 1.0/3) {
			t.Error("width should be 1/n", e.ID, box.Width)
		}
		if !almostEqual(box.Left, wantLeft[i]) {
			t.Error("left should follow input order", e.ID, box.Left)
		}
	}
}

func TestLayoutSlotVerticalFractions(t *testing.T) {
	events := []calendar.Event{{
		ID:    "half",
		Start: at(2024, time.April, 2, 9, 30),
		End:   at(2024, time.April, 2, 10, 15),
	}}
	box := calendar.LayoutSlot(events)["half"]
	if !almostEqual(box.Top, 0.5) {
		t.Error("30 minutes past the hour should sit halfway down", box.Top)
	}
	if !almostEqual(box.Height, 0.75) {
		t.Error("45 minutes should be three quarters of a cell", box.Height)
	}
	if !almostEqual(box.Width, 1) || !almostEqual(box.Left, 0) {
		t.Error("a lone event takes the full width", box)
	}
}

func TestLayoutSlotLongEvent(t *testing.T) {
	// height is a raw fraction and can exceed the cell
	events := []calendar.Event{{
		ID:    "long",
		Start: at(2024, time.April, 2, 9, 0),
		End:   at(2024, time.April, 2, 11, 30),
	}}
	box := calendar.LayoutSlot(events)["long"]
	if !almostEqual(box.Height, 2.5) {
		t.Error("2.5 hour event should be 2.5 cells tall", box.Height)
	}
}

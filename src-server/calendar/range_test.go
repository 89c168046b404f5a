package calendar_test

import (
	"testing"
	"time"

	"dayplan/src-server/calendar"
)

func TestVisibleRangeMonth(t *testing.T) {
	// whole weeks, starting on the configured week start, for a spread
	// of reference dates including leap February and year boundaries
	refs := []time.Time{
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
	for _, ref := range refs {
		days := calendar.VisibleRange(ref, calendar.ViewModeMonth)
		if len(days)%7 != 0 {
			t.Error("month range length not divisible by 7", ref, len(days))
		}
		if days[0].Weekday() != calendar.WeekStart {
			t.Error("month range doesn't start on week start", ref, days[0].Weekday())
		}
		if days[len(days)-1].Before(time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)) {
			t.Error("month range ends before the last day of the month", ref)
		}
		for i := 1; i < len(days); i++ {
			if !calendar.SameDay(days[i], days[i-1].AddDate(0, 0, 1)) {
				t.Error("month range not contiguous", ref, days[i-1], days[i])
			}
		}
	}
}

func TestVisibleRangeWeek(t *testing.T) {
	ref := time.Date(2024, time.March, 14, 10, 30, 0, 0, time.UTC) // a Thursday
	days := calendar.VisibleRange(ref, calendar.ViewModeWeek)
	if len(days) != 7 {
		t.Fatal("week range should have 7 days", len(days))
	}
	if days[0].Weekday() != calendar.WeekStart {
		t.Error("week should start on week start", days[0].Weekday())
	}
	containsRef := false
	for _, d := range days {
		if calendar.SameDay(d, ref) {
			containsRef = true
		}
	}
	if !containsRef {
		t.Error("week range doesn't contain the reference date")
	}
}

func TestVisibleRangeDay(t *testing.T) {
	ref := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)
	days := calendar.VisibleRange(ref, calendar.ViewModeDay)
	if len(days) != 1 || !days[0].Equal(ref) {
		t.Error("day range should be exactly the reference date", days)
	}
}

func TestAdvanceRoundTrip(t *testing.T) {
	ref := time.Date(2024, time.May, 17, 9, 0, 0, 0, time.UTC)
	for _, mode := range []calendar.ViewMode{calendar.ViewModeDay, calendar.ViewModeWeek} {
		forward := calendar.Advance(ref, mode, 1)
		back := calendar.Advance(forward, mode, -1)
		if !back.Equal(ref) {
			t.Error("advance should round-trip", mode, back)
		}
	}
}

func TestAdvanceMonthClamps(t *testing.T) {
	// Jan 31 + 1 month lands on the last day of February, not March
	ref := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)
	next := calendar.Advance(ref, calendar.ViewModeMonth, 1)
	if next.Month() != time.February || next.Day() != 29 {
		t.Error("expected Feb 29 2024", next)
	}

	ref = time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	next = calendar.Advance(ref, calendar.ViewModeMonth, 1)
	if next.Month() != time.February || next.Day() != 28 {
		t.Error("expected Feb 28 2023", next)
	}

	// known asymmetry: the clamped day doesn't come back
	back := calendar.Advance(next, calendar.ViewModeMonth, -1)
	if back.Day() != 28 {
		t.Error("clamped month advance shouldn't round-trip to Jan 31", back)
	}
}

func TestAdvanceMonthKeepsDayOfMonth(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC)
	next := calendar.Advance(ref, calendar.ViewModeMonth, 1)
	if next.Month() != time.April || next.Day() != 15 {
		t.Error("month advance should keep the day-of-month when valid", next)
	}
	if next.Hour() != 8 || next.Minute() != 30 {
		t.Error("month advance should keep the clock", next)
	}
}

func TestStartOfWeek(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	sunday := time.Date(2024, time.March, 17, 23, 0, 0, 0, time.UTC)
	start := calendar.StartOfWeek(sunday)
	if start.Weekday() != time.Monday || start.Day() != 11 {
		t.Error("expected Monday March 11", start)
	}

	monday := time.Date(2024, time.March, 11, 5, 0, 0, 0, time.UTC)
	if !calendar.SameDay(calendar.StartOfWeek(monday), monday) {
		t.Error("start of week on a Monday should be the same day")
	}
}

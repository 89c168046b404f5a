package calendar

import "time"

// ViewMode is the visible date granularity of the calendar.
type ViewMode string

const (
	ViewModeDay   ViewMode = "day"
	ViewModeWeek  ViewMode = "week"
	ViewModeMonth ViewMode = "month"
)

func (m ViewMode) Valid() bool {
	switch m {
	case ViewModeDay, ViewModeWeek, ViewModeMonth:
		return true
	}
	return false
}

// WeekStart is the first weekday of every rendered week.
const WeekStart = time.Monday

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns midnight of the WeekStart day of t's week.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) - int(WeekStart) + 7) % 7
	return StartOfDay(t.AddDate(0, 0, -offset))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddMonths moves t by delta calendar months, clamping the day-of-month
// to the last valid day of the target month (Jan 31 +1 -> Feb 28/29).
// time.AddDate would normalize Jan 31 +1 into March instead.
func AddMonths(t time.Time, delta int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	h, min, sec := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, h, min, sec, t.Nanosecond(), t.Location())
}

// VisibleRange returns the ordered days to render for the given
// reference date and view mode. Month mode always covers whole weeks,
// padding with leading/trailing days from adjacent months.
func VisibleRange(ref time.Time, mode ViewMode) []time.Time {
	switch mode {
	case ViewModeMonth:
		firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
		start := StartOfWeek(firstOfMonth)
		end := StartOfWeek(lastOfMonth).AddDate(0, 0, 6)
		days := make([]time.Time, 0, 42)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	case ViewModeWeek:
		start := StartOfWeek(ref)
		days := make([]time.Time, 7)
		for i := range days {
			days[i] = start.AddDate(0, 0, i)
		}
		return days
	default:
		return []time.Time{ref}
	}
}

// Advance moves the reference date by one unit of the view granularity;
// dir is +1 or -1. Day and week advances round-trip, month advance may
// not across month-length boundaries because of day clamping.
func Advance(ref time.Time, mode ViewMode, dir int) time.Time {
	switch mode {
	case ViewModeMonth:
		return AddMonths(ref, dir)
	case ViewModeWeek:
		return ref.AddDate(0, 0, 7*dir)
	default:
		return ref.AddDate(0, 0, dir)
	}
}

package calendar

import "time"

// The source web client grew three divergent grid renderers, each with
// its own copy of the slot logic. These builders are the single
// canonical version: pure functions from controller state to render
// data, nothing here mutates anything.

// MonthCell is one day cell of the month grid.
type MonthCell struct {
	Date     time.Time `json:"date"`
	InMonth  bool      `json:"inMonth"`
	Selected bool      `json:"selected"`
	Events   []Event   `json:"events"`
}

// HourBlock is one laid-out event inside an hour cell.
type HourBlock struct {
	Event Event `json:"event"`
	Box   Box   `json:"box"`
}

// HourCell is one (day, hour) cell of the week or day grid.
type HourCell struct {
	Date     time.Time   `json:"date"`
	Hour     int         `json:"hour"`
	Selected bool        `json:"selected"`
	Blocks   []HourBlock `json:"blocks"`
}

// DayColumn is the 24 hour cells of one day, plus the day's all-day
// events which the hourly grid never shows.
type DayColumn struct {
	Date     time.Time `json:"date"`
	Selected bool      `json:"selected"`
	AllDay   []Event   `json:"allDay"`
	Hours    []HourCell `json:"hours"`
}

// BuildMonthGrid returns the month view's day cells for the state's
// visible range, whole weeks in row order.
func BuildMonthGrid(state State) []MonthCell {
	days := VisibleRange(state.ReferenceDate, ViewModeMonth)
	cells := make([]MonthCell, 0, len(days))
	for _, day := range days {
		cells = append(cells, MonthCell{
			Date:     day,
			InMonth:  day.Month() == state.ReferenceDate.Month() && day.Year() == state.ReferenceDate.Year(),
			Selected: SameDay(day, state.SelectedDate),
			Events:   EventsOnDay(state.Events, day),
		})
	}
	return cells
}

// BuildWeekGrid returns one column per visible day of the week view.
func BuildWeekGrid(state State) []DayColumn {
	days := VisibleRange(state.ReferenceDate, ViewModeWeek)
	columns := make([]DayColumn, 0, len(days))
	for _, day := range days {
		columns = append(columns, buildDayColumn(state, day))
	}
	return columns
}

// BuildDayGrid returns the single column of the day view.
func BuildDayGrid(state State) DayColumn {
	return buildDayColumn(state, state.ReferenceDate)
}

func buildDayColumn(state State, day time.Time) DayColumn {
	column := DayColumn{
		Date:     day,
		Selected: SameDay(day, state.SelectedDate),
		AllDay:   make([]Event, 0),
		Hours:    make([]HourCell, 0, 24),
	}
	for _, e := range EventsOnDay(state.Events, day) {
		if e.IsAllDay {
			column.AllDay = append(column.AllDay, e)
		}
	}
	for _, hour := range HoursInDay() {
		slotEvents := EventsAtHour(state.Events, day, hour)
		boxes := LayoutSlot(slotEvents)
		blocks := make([]HourBlock, 0, len(slotEvents))
		for _, e := range slotEvents {
			blocks = append(blocks, HourBlock{Event: e, Box: boxes[e.ID]})
		}
		column.Hours = append(column.Hours, HourCell{
			Date:     day,
			Hour:     hour,
			Selected: column.Selected && hour == state.SelectedHour,
			Blocks:   blocks,
		})
	}
	return column
}

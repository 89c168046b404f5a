package calendar

// Box places one event inside an hour cell; every field is a fraction
// of the cell. Height can exceed 1 for events longer than an hour. The
// renderer owns the minimum-height clamp (20px in the web client), the
// engine reports raw fractions.
type Box struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
}

// LayoutSlot assigns a Box to every event sharing one hour slot, keyed
// by event id. Width is divided equally among the slot's population in
// input order; events colliding with the slot but not with each other
// still split the width (no interval-graph packing).
func LayoutSlot(eventsInSlot []Event) map[string]Box {
	n := len(eventsInSlot)
	boxes := make(map[string]Box, n)
	for i, e := range eventsInSlot {
		boxes[e.ID] = Box{
			Top:    float64(e.Start.Minute()) / 60,
			Height: e.Duration().Minutes() / 60,
			Left:   float64(i) / float64(n),
			Width:  1 / float64(n),
		}
	}
	return boxes
}

// HoursInDay is the hour slots rendered by the day and week grids.
func HoursInDay() []int {
	hours := make([]int, 24)
	for i := range hours {
		hours[i] = i
	}
	return hours
}

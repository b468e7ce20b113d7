package game

import "time"

// Input is a press of a lane, Time is relative to map start.
type Input struct {
	Lane int
	Time time.Duration
}

// Overlay is the per-frame state that scheduled effects write into and the
// renderer reads from.
type Overlay struct {
	Opacity float64
	Markers []Tier
}

// Clear drops the markers from the previous frame.
func (o *Overlay) Clear() {
	o.Markers = o.Markers[:0]
}

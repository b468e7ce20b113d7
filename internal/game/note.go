package game

import (
	"strconv"
	"time"
)

const (
	NKeys = 4

	// Width of the playfield in chart coordinates
	PlayfieldWidth = 512

	DefaultLeadIn = 1500 * time.Millisecond
)

type Note struct {
	Lane int           // The column, 0-3 for valid charts
	Time time.Duration // The time the note should be hit, relative to map start

	// This is state
	Hit bool
}

// Mark consumes the note, returning false if it was already consumed.
func (n *Note) Mark() bool {
	if n.Hit {
		return false
	}
	n.Hit = true
	return true
}

// Lane maps an x coordinate to a column. It is not clamped, x >= 512 gives
// lane 4 or more.
func Lane(x int) int {
	v := x * NKeys
	if v < 0 && v%PlayfieldWidth != 0 {
		return v/PlayfieldWidth - 1
	}
	return v / PlayfieldWidth
}

func ValidLane(lane int) bool {
	return lane >= 0 && lane < NKeys
}

// Timeline creates a fresh, unhit note per hit object in chart order.
func Timeline(c *Chart) []*Note {
	notes := make([]*Note, 0, len(c.HitObjects))
	for _, h := range c.HitObjects {
		notes = append(notes, &Note{
			Lane: Lane(h.X),
			Time: time.Duration(h.Time) * time.Millisecond,
		})
	}
	return notes
}

// LeadIn is the delay between playback starting and the chart clock origin.
func LeadIn(c *Chart) time.Duration {
	v, ok := c.General["AudioLeadIn"]
	if !ok {
		return DefaultLeadIn
	}
	ms, err := strconv.ParseFloat(v, 64)
	if nil != err {
		return DefaultLeadIn
	}
	return time.Duration(ms * float64(time.Millisecond))
}

package render

import (
	"math"
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
)

// Field is the layout of the playfield on a terminal of a given size.
type Field struct {
	Lanes   [game.NKeys]int // column of each lane
	HitRow  int
	Rows    int
	SideCol int
	Center  int // row for hit markers
}

func NewField(columns, rows, spacing, hitPosition int) Field {
	mc := columns >> 1
	f := Field{
		Lanes: [game.NKeys]int{
			mc - spacing*3/2,
			mc - spacing/2,
			mc + spacing/2,
			mc + spacing*3/2,
		},
		HitRow: rows - hitPosition,
		Rows:   rows,
		Center: rows >> 1,
	}
	f.SideCol = f.Lanes[0] - 36
	if f.SideCol < 2 {
		f.SideCol = 2
	}
	return f
}

// Row gives the terminal row of a note distance away from the hit line,
// scrolling at speed rows per second.
func (f Field) Row(distance time.Duration, speed float64) int {
	return f.HitRow - int(math.Round(distance.Seconds()*speed))
}

// Visible reports that a row is strictly inside the screen.
func (f Field) Visible(row int) bool {
	return row > 0 && row <= f.Rows
}

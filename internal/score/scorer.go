package score

import (
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save the state of this performance
	Save(chart *game.Chart, play *Play) error

	// Load up previous plays of the chart, newest first
	Load(chart *game.Chart) ([]History, error)
}

// Play is a finished session.
type Play struct {
	OD       float64
	Tally    game.Tally
	Inputs   []game.Input
	PlayedAt time.Time
}

type History struct {
	ID       string
	Sum      string
	OD       float64
	PlayedAt time.Time
	Accuracy float64
	Inputs   []game.Input
}

func NewPlay(e *Engine, now time.Time) *Play {
	return &Play{
		OD:       e.OD(),
		Tally:    e.Tally(),
		Inputs:   e.Inputs(),
		PlayedAt: now,
	}
}

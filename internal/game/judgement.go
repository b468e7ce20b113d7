package game

import (
	"math"
	"time"
)

type Tier int

const (
	Marvelous Tier = iota
	Perfect
	Great
	Good
	Ok
	Miss
)

type Judgement struct {
	Name  string
	Score int
	Base  float64 // window in ms at OD 0
	Scale float64 // ms removed per point of OD
}

// Ordered from tightest to loosest, the first window that contains a delta wins.
var Judgements = [...]Judgement{
	Marvelous: {Name: "Marvelous", Score: 320, Base: 16},
	Perfect:   {Name: "Perfect", Score: 300, Base: 64, Scale: 3},
	Great:     {Name: "Great", Score: 200, Base: 97, Scale: 3},
	Good:      {Name: "Good", Score: 100, Base: 127, Scale: 3},
	Ok:        {Name: "Ok", Score: 50, Base: 151, Scale: 3},
	Miss:      {Name: "Miss", Score: 0},
}

func (t Tier) Judgement() Judgement {
	return Judgements[t]
}

func (t Tier) Score() int {
	return Judgements[t].Score
}

func (t Tier) String() string {
	if t < Marvelous || t > Miss {
		return "Unknown"
	}
	return Judgements[t].Name
}

// Window is the largest absolute delta judged as tier t. Miss has no window.
func Window(t Tier, od float64) time.Duration {
	j := Judgements[t]
	return time.Duration(math.Round((j.Base - j.Scale*od) * float64(time.Millisecond)))
}

// MissWindow is how late a note may be before it can no longer be hit.
func MissWindow(od float64) time.Duration {
	return Window(Ok, od)
}

// Judge classifies an absolute timing delta.
func Judge(delta time.Duration, od float64) Tier {
	if delta < 0 {
		delta = -delta
	}
	for t := Marvelous; t < Miss; t++ {
		if delta <= Window(t, od) {
			return t
		}
	}
	return Miss
}

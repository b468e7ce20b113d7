package score

import (
	"math"
	"time"

	"git.lost.host/meutraa/fourk/internal/event"
	"git.lost.host/meutraa/fourk/internal/game"
)

const (
	// How long after the last note the session ends
	EndDelay = 4000 * time.Millisecond

	MarkerDuration = 200 * time.Millisecond
)

// Engine judges one play of a chart at a time.
type Engine struct {
	// Hit markers are scheduled here, may be nil
	Events *event.Manager[*game.Overlay]

	chart    *game.Chart
	notes    []*game.Note
	tally    game.Tally
	od       float64
	mapStart time.Time
	last     time.Duration
	inputs   []game.Input

	// Signed hit errors, note time minus input time
	distances []time.Duration
}

func NewEngine(events *event.Manager[*game.Overlay]) *Engine {
	return &Engine{Events: events}
}

// Start resets all session state. The chart clock starts after the lead-in.
func (e *Engine) Start(chart *game.Chart, od float64, now time.Time) {
	e.chart = chart
	e.notes = game.Timeline(chart)
	e.tally.Reset()
	e.od = od
	e.mapStart = now.Add(game.LeadIn(chart))
	e.last = time.Duration(chart.LastTime()) * time.Millisecond
	e.inputs = e.inputs[:0]
	e.distances = e.distances[:0]
	if nil != e.Events {
		e.Events.Reset()
	}
}

func (e *Engine) Elapsed(now time.Time) time.Duration {
	return now.Sub(e.mapStart)
}

func (e *Engine) marker(tier game.Tier) {
	if nil == e.Events {
		return
	}
	e.Events.Add(func(at time.Time, o *game.Overlay) {
		o.Markers = append(o.Markers, tier)
	}, MarkerDuration)
}

// ApplyInput judges a press of lane against the first unhit note in that lane,
// which is not necessarily the closest one. ok is false when the lane has no
// unhit notes. A press outside every window returns game.Miss and leaves the
// note for Sweep.
func (e *Engine) ApplyInput(lane int, now time.Time) (tier game.Tier, ok bool) {
	elapsed := e.Elapsed(now)
	e.inputs = append(e.inputs, game.Input{Lane: lane, Time: elapsed})

	var note *game.Note
	for _, n := range e.notes {
		if !n.Hit && n.Lane == lane {
			note = n
			break
		}
	}
	if nil == note {
		return game.Miss, false
	}

	distance := note.Time - elapsed
	tier = game.Judge(distance, e.od)
	if tier == game.Miss {
		return tier, true
	}

	note.Mark()
	e.tally.Add(tier)
	e.distances = append(e.distances, distance)
	e.marker(tier)
	return tier, true
}

// Hit sweeps up to now and then applies the press, so a note that was already
// overdue at the time of the press cannot take it.
func (e *Engine) Hit(lane int, now time.Time) (tier game.Tier, ok bool) {
	e.Sweep(now)
	return e.ApplyInput(lane, now)
}

// Sweep counts every note whose last window has passed as a miss. It returns
// how many notes it consumed.
func (e *Engine) Sweep(now time.Time) int {
	elapsed := e.Elapsed(now)
	worst := game.MissWindow(e.od)
	missed := 0
	for _, n := range e.notes {
		if n.Hit {
			continue
		}
		if n.Time-elapsed < -worst {
			n.Mark()
			e.tally.Add(game.Miss)
			e.marker(game.Miss)
			missed++
		}
	}
	return missed
}

// Done reports that the session is over, hit or not.
func (e *Engine) Done(now time.Time) bool {
	return e.Elapsed(now) > e.last+EndDelay
}

func (e *Engine) Tally() game.Tally {
	return e.tally
}

// Notes is shared with the renderer, which must not modify it.
func (e *Engine) Notes() []*game.Note {
	return e.notes
}

func (e *Engine) Chart() *game.Chart {
	return e.chart
}

func (e *Engine) OD() float64 {
	return e.od
}

func (e *Engine) MapStart() time.Time {
	return e.mapStart
}

// Inputs returns a copy of every press so far, relative to map start.
func (e *Engine) Inputs() []game.Input {
	return append([]game.Input(nil), e.inputs...)
}

// Mean is the average signed hit error, positive when early.
func (e *Engine) Mean() time.Duration {
	if len(e.distances) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range e.distances {
		sum += d
	}
	return sum / time.Duration(len(e.distances))
}

// Stdev is the sample standard deviation of the hit error.
func (e *Engine) Stdev() time.Duration {
	if len(e.distances) < 2 {
		return 0
	}
	mean := float64(e.Mean())
	stdev := 0.0
	for _, d := range e.distances {
		xi := float64(d) - mean
		stdev += xi * xi
	}
	stdev /= float64(len(e.distances) - 1)
	return time.Duration(math.Sqrt(stdev))
}

// Replay scores recorded inputs against a fresh timeline.
func Replay(chart *game.Chart, od float64, inputs []game.Input) game.Tally {
	e := NewEngine(nil)
	e.Start(chart, od, time.Time{})
	for _, in := range inputs {
		now := e.MapStart().Add(in.Time)
		e.Hit(in.Lane, now)
	}
	e.Sweep(e.MapStart().Add(e.last + game.MissWindow(od) + time.Millisecond))
	return e.Tally()
}

// Package event runs short lived callbacks, once per tick, until their
// duration has passed.
package event

import "time"

// Func is invoked every tick while its event is live. at is the tick time
// minus the event duration, not the time since the event was added.
type Func[T any] func(at time.Time, ctx T)

type scheduled[T any] struct {
	fn       Func[T]
	created  time.Time
	duration time.Duration
}

// Manager holds no reference to the context, it is supplied on each Tick.
type Manager[T any] struct {
	Now func() time.Time

	events []*scheduled[T]
	resets int
}

func NewManager[T any]() *Manager[T] {
	return &Manager[T]{Now: time.Now}
}

func (m *Manager[T]) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

// Add registers fn to run on every tick for the next d.
func (m *Manager[T]) Add(fn Func[T], d time.Duration) {
	m.events = append(m.events, &scheduled[T]{
		fn:       fn,
		created:  m.now(),
		duration: d,
	})
}

// Tick runs every registered callback once. Callbacks whose time has run out
// get this final call and are then dropped. Anything added by a callback is
// first run on the next tick.
func (m *Manager[T]) Tick(now time.Time, ctx T) {
	current, resets := m.events, m.resets
	for _, e := range current {
		e.fn(now.Add(-e.duration), ctx)
		if m.resets != resets {
			// Reset from inside a callback, only keep what came after it
			return
		}
	}

	// Callbacks may have appended to m.events
	added := m.events[len(current):]
	kept := make([]*scheduled[T], 0, len(m.events))
	for _, e := range current {
		if e.created.Add(e.duration).Before(now) {
			continue
		}
		kept = append(kept, e)
	}
	m.events = append(kept, added...)
}

func (m *Manager[T]) Len() int {
	return len(m.events)
}

// Reset drops everything without invoking it.
func (m *Manager[T]) Reset() {
	m.events = nil
	m.resets++
}

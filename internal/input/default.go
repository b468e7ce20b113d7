// Package input turns key presses into timestamped lane events.
package input

import (
	"log"
	"time"

	"git.lost.host/meutraa/fourk/internal/config"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

type Event struct {
	Rune   rune
	Lane   int // -1 when the key is not bound
	Time   time.Time
	Escape bool
}

type DefaultReader struct {
	Keys config.KeyTable
	Now  func() time.Time

	events chan *Event
	done   chan struct{}
}

func translate(ev keyboard.KeyEvent, keys config.KeyTable, now time.Time) *Event {
	e := &Event{Rune: ev.Rune, Lane: -1, Time: now}
	if ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC {
		e.Escape = true
		return e
	}
	if ev.Rune == 0 && ev.Key == keyboard.KeySpace {
		e.Rune = ' '
	}
	if lane, ok := keys.Lane(e.Rune); ok {
		e.Lane = lane
	}
	return e
}

// Open starts reading the keyboard, events are stamped as they arrive.
func (r *DefaultReader) Open() error {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	now := r.Now
	if nil == now {
		now = time.Now
	}
	r.events = make(chan *Event, 128)
	r.done = make(chan struct{})
	go func() {
		defer close(r.events)
		for {
			select {
			case <-r.done:
				return
			case ev, ok := <-keys:
				if !ok {
					return
				}
				if nil != ev.Err {
					log.Println(ev.Err, "unable to read keyboard input")
					continue
				}
				select {
				case r.events <- translate(ev, r.Keys, now()):
				case <-r.done:
					return
				}
			}
		}
	}()
	return nil
}

func (r *DefaultReader) Events() <-chan *Event {
	return r.events
}

// Pending drains everything read so far without blocking.
func (r *DefaultReader) Pending() []*Event {
	evs := []*Event{}
	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return evs
			}
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

func (r *DefaultReader) Close() error {
	if nil != r.done {
		close(r.done)
		r.done = nil
	}
	return keyboard.Close()
}

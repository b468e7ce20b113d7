package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"git.lost.host/meutraa/fourk/internal/config"
	"git.lost.host/meutraa/fourk/internal/event"
	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/input"
	"git.lost.host/meutraa/fourk/internal/render"
	"git.lost.host/meutraa/fourk/internal/score"
	"git.lost.host/meutraa/fourk/internal/theme"
)

const (
	FadeDuration = 500 * time.Millisecond

	// How long a lane stays lit after a press
	pressHighlight = 80 * time.Millisecond

	// Hit markers shown at once
	maxMarkers = 3
)

type Reader interface {
	Pending() []*input.Event
}

type Player interface {
	Play(name string, data []byte, at time.Time) error
	Stop()
}

// Program plays one chart at a time on the terminal.
type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Input    Reader
	Audio    Player // may be nil
	Settings *config.Settings

	Offset      time.Duration
	FramePeriod time.Duration
	Clock       func() time.Time

	engine  *score.Engine
	events  *event.Manager[*game.Overlay]
	overlay game.Overlay
	field   render.Field
	pressed [game.NKeys]time.Time

	endAt    time.Time
	finished bool
}

func (p *Program) now() time.Time {
	if nil == p.Clock {
		return time.Now()
	}
	return p.Clock()
}

// Play runs a chart until it ends or is aborted. The returned play is nil when
// aborted. A chart whose audio is not in the set is a *game.ResourceMissingError.
func (p *Program) Play(set *game.ChartSet, chart *game.Chart, od float64) (*score.Play, error) {
	name := chart.AudioFilename()
	data, err := set.Resource(name)
	if nil != err {
		return nil, err
	}

	if err := p.Renderer.Init(); nil != err {
		return nil, err
	}
	defer func() {
		// Restore the terminal state
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	now := p.now()
	p.start(chart, od, now)
	log.Printf("Playing %v [%v] at od %v\n", chart.Title(), chart.Version(), od)

	if nil != p.Audio {
		if err := p.Audio.Play(name, data, now); nil != err {
			log.Println("unable to play audio, continuing without it", err)
		}
		defer p.Audio.Stop()
	}

	p.Renderer.RenderLoop(p.FramePeriod, p.tick)

	if !p.finished {
		return nil, nil
	}
	return score.NewPlay(p.engine, p.now()), nil
}

func (p *Program) start(chart *game.Chart, od float64, now time.Time) {
	if nil == p.events {
		p.events = event.NewManager[*game.Overlay]()
		p.events.Now = p.now
		p.engine = score.NewEngine(p.events)
	}
	p.engine.Start(chart, od, now)

	columns, rows := p.Renderer.Size()
	p.field = render.NewField(columns, rows, p.Settings.Skin.CircleSize, p.Settings.Gameplay.HitPosition)
	p.pressed = [game.NKeys]time.Time{}
	p.overlay = game.Overlay{Opacity: 0}
	p.endAt = time.Time{}
	p.finished = false

	p.fade(now, true)
}

// fade schedules an opacity transition starting at start.
func (p *Program) fade(start time.Time, in bool) {
	p.events.Add(func(at time.Time, o *game.Overlay) {
		progress := float64(at.Add(FadeDuration).Sub(start)) / float64(FadeDuration)
		if progress > 1 {
			progress = 1
		} else if progress < 0 {
			progress = 0
		}
		if in {
			o.Opacity = progress
		} else {
			o.Opacity = 1 - progress
		}
	}, FadeDuration)
}

func (p *Program) tick(now time.Time) bool {
	for _, ev := range p.Input.Pending() {
		if ev.Escape {
			log.Println("Aborted")
			return false
		}
		if !game.ValidLane(ev.Lane) {
			continue
		}
		p.pressed[ev.Lane] = ev.Time
		p.engine.Hit(ev.Lane, ev.Time.Add(p.Offset))
	}
	p.engine.Sweep(now.Add(p.Offset))

	if p.endAt.IsZero() && p.engine.Done(now.Add(p.Offset)) {
		p.endAt = now.Add(FadeDuration)
		p.fade(now, false)
	}
	if !p.endAt.IsZero() && now.After(p.endAt) {
		p.finished = true
		return false
	}

	p.overlay.Opacity = 1
	p.overlay.Clear()
	p.events.Tick(now, &p.overlay)

	p.draw(now)
	return true
}

func (p *Program) draw(now time.Time) {
	r, th, f := p.Renderer, p.Theme, p.field
	opacity := p.overlay.Opacity
	elapsed := p.engine.Elapsed(now.Add(p.Offset))

	r.Clear()

	// Progress through the chart
	if last := time.Duration(p.engine.Chart().LastTime()) * time.Millisecond; last > 0 {
		columns, _ := r.Size()
		width := int(float64(columns) * float64(elapsed) / float64(last))
		if width > columns {
			width = columns
		}
		if width > 0 {
			r.Fill(1, 1, strings.Repeat("─", width))
		}
	}

	for _, note := range p.engine.Notes() {
		if note.Hit || !game.ValidLane(note.Lane) {
			continue
		}
		row := f.Row(note.Time-elapsed, p.Settings.Gameplay.ScrollSpeed)
		if f.Visible(row) && row != f.HitRow {
			r.Fill(row, f.Lanes[note.Lane], th.RenderNote(note.Lane, opacity))
		}
	}

	for lane, col := range f.Lanes {
		pressed := !p.pressed[lane].IsZero() && now.Sub(p.pressed[lane]) < pressHighlight
		r.Fill(f.HitRow, col, th.RenderHitField(lane, pressed, opacity))
	}

	markers := p.overlay.Markers
	if len(markers) > maxMarkers {
		markers = markers[len(markers)-maxMarkers:]
	}
	for i := range markers {
		// Newest closest to the hit line
		tier := markers[len(markers)-1-i]
		r.Fill(f.Center-i, f.Lanes[1], th.RenderTier(tier, opacity))
	}

	t := p.engine.Tally()
	r.Fill(10, f.SideCol, fmt.Sprintf("   Accuracy:  %6.2f%%", 100*t.Accuracy()))
	r.Fill(11, f.SideCol, fmt.Sprintf("      Score:  %6v", t.Score()))
	r.Fill(12, f.SideCol, fmt.Sprintf("       Mean:  %6.2f ms", ms(p.engine.Mean())))
	r.Fill(13, f.SideCol, fmt.Sprintf("      Stdev:  %6.2f ms", ms(p.engine.Stdev())))
	r.Fill(14, f.SideCol, fmt.Sprintf("      Notes:  %6v", len(p.engine.Notes())))
	for i := range game.Judgements {
		tier := game.Tier(i)
		r.FillColor(18+i, f.SideCol, th.TierColor(tier), fmt.Sprintf("%9v:  %6v", tier, t.Count(tier)))
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

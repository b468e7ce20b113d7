// Package audio plays a chart's song from the bytes stored in its archive.
package audio

import (
	"bytes"
	"io"
	"log"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decode picks a decoder from the file extension.
func Decode(name string, data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	rc := io.NopCloser(bytes.NewReader(data))
	var (
		s   beep.StreamSeekCloser
		f   beep.Format
		err error
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		s, f, err = mp3.Decode(rc)
	case ".ogg":
		s, f, err = vorbis.Decode(rc)
	case ".wav":
		s, f, err = wav.Decode(rc)
	default:
		return nil, beep.Format{}, errors.Wrapf(ErrUnsupportedFormat, "%v", name)
	}
	if nil != err {
		return nil, beep.Format{}, errors.Wrapf(err, "decode %v", name)
	}
	return s, f, nil
}

type Player struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	streamer beep.StreamSeekCloser
	timer    *time.Timer
}

// Play decodes the song and starts it at the wall clock time at.
func (p *Player) Play(name string, data []byte, at time.Time) error {
	streamer, format, err := Decode(name, data)
	if nil != err {
		return err
	}

	p.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rate == 0 {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
			streamer.Close()
			return errors.Wrap(err, "unable to open speaker")
		}
		p.rate = format.SampleRate
	}

	var s beep.Streamer = streamer
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, streamer)
	}

	p.streamer = streamer
	p.timer = time.AfterFunc(time.Until(at), func() {
		speaker.Play(s)
	})
	log.Printf("Playing %v at %v\n", name, format.SampleRate)
	return nil
}

// Stop cancels or ends the current song.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if nil != p.timer {
		p.timer.Stop()
		p.timer = nil
	}
	if p.rate != 0 {
		speaker.Clear()
	}
	if nil != p.streamer {
		if err := p.streamer.Close(); nil != err {
			log.Println("unable to close audio stream", err)
		}
		p.streamer = nil
	}
}

package audio

import (
	"errors"
	"testing"
)

func TestDecodeUnsupported(t *testing.T) {
	for _, name := range []string{"song.flac", "song", "cover.jpg"} {
		if _, _, err := Decode(name, []byte("data")); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%v: expected unsupported format, got %v", name, err)
		}
	}
}

func TestDecodeCorrupt(t *testing.T) {
	for _, name := range []string{"audio.wav", "audio.ogg", "AUDIO.WAV"} {
		_, _, err := Decode(name, []byte("not audio at all"))
		if nil == err {
			t.Errorf("%v: expected a decode error", name)
		}
		if errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%v: extension should be recognised", name)
		}
	}
}

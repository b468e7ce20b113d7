package input

import (
	"testing"
	"time"

	"git.lost.host/meutraa/fourk/internal/config"
	"github.com/eiannone/keyboard"
)

func TestTranslate(t *testing.T) {
	keys, err := config.ParseKeys("df k")
	if nil != err {
		t.Fatal(err)
	}
	now := time.Unix(10, 0)

	tests := map[keyboard.KeyEvent]Event{
		{Rune: 'd'}:              {Rune: 'd', Lane: 0, Time: now},
		{Rune: 'k'}:              {Rune: 'k', Lane: 3, Time: now},
		{Key: keyboard.KeySpace}: {Rune: ' ', Lane: 2, Time: now},
		{Rune: 'x'}:              {Rune: 'x', Lane: -1, Time: now},
		{Rune: '3'}:              {Rune: '3', Lane: -1, Time: now},
		{Key: keyboard.KeyEsc}:   {Lane: -1, Time: now, Escape: true},
		{Key: keyboard.KeyCtrlC}: {Lane: -1, Time: now, Escape: true},
	}
	for in, expected := range tests {
		out := translate(in, keys, now)
		if *out != expected {
			t.Log("      in:", in)
			t.Log("     got:", *out)
			t.Log("expected:", expected)
			t.Fail()
		}
	}
}

func TestPending(t *testing.T) {
	r := &DefaultReader{events: make(chan *Event, 4)}
	if len(r.Pending()) != 0 {
		t.Error("nothing pending yet")
	}
	r.events <- &Event{Lane: 1}
	r.events <- &Event{Lane: 2}
	evs := r.Pending()
	if len(evs) != 2 || evs[0].Lane != 1 || evs[1].Lane != 2 {
		t.Errorf("pending %v", evs)
	}
	close(r.events)
	if len(r.Pending()) != 0 {
		t.Error("closed reader has nothing pending")
	}
}

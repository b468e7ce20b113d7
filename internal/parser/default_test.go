package parser

import (
	"errors"
	"testing"

	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/testdata"
)

func TestParse(t *testing.T) {
	p := DefaultParser{}
	chart, err := p.Parse(testdata.Chart)
	if nil != err {
		t.Fatal("unable to parse chart", err)
	}

	for k, v := range map[string]string{"AudioFilename": "audio.mp3", "AudioLeadIn": "0", "Mode": "3"} {
		if chart.General[k] != v {
			t.Errorf("General[%v] = %q, expected %q", k, chart.General[k], v)
		}
	}
	if chart.Title() != "Test Song" || chart.Version() != "Normal" {
		t.Error("metadata", chart.Metadata)
	}
	if chart.Difficulty["OverallDifficulty"] != "7" {
		t.Error("difficulty", chart.Difficulty)
	}

	// These sections are recognised but not read
	if len(chart.Events) != 0 || len(chart.TimingPoints) != 0 || len(chart.Breaks) != 0 || len(chart.Backgrounds) != 0 {
		t.Error("unread sections should stay empty")
	}

	if len(chart.HitObjects) != 5 {
		t.Fatalf("expected 5 hit objects, got %v", len(chart.HitObjects))
	}
	h := chart.HitObjects[0]
	if h.X != 64 || h.Time != 1000 || h.Type != game.TypeCircle {
		t.Errorf("first hit object %+v", h)
	}
	// The first sample component stays with the comma separated fields
	if len(h.Params) != 2 || h.Params[0] != 0 {
		t.Errorf("params %v", h.Params)
	}
	if len(h.Sample) != 3 {
		t.Errorf("samples %v", h.Sample)
	}

	hold := chart.HitObjects[2]
	if hold.Type&game.TypeHold == 0 || len(hold.Params) != 2 || hold.Params[1] != 2500 {
		t.Errorf("hold %+v", hold)
	}

	last := chart.HitObjects[4]
	if last.SampleFile != "hit.wav" || len(last.Sample) != 3 || last.Sample[2] != 70 {
		t.Errorf("custom sample %+v", last)
	}
	if chart.LastTime() != 3000 {
		t.Errorf("last time %v", chart.LastTime())
	}
	if len(chart.Checksum) != 64 {
		t.Errorf("checksum %q", chart.Checksum)
	}
}

func TestParseHitObjectLine(t *testing.T) {
	h, err := hitObject("100,0,5000,1,0")
	if nil != err {
		t.Fatal(err)
	}
	if h.X != 100 || h.Time != 5000 || h.Type != 1 || len(h.Params) != 1 || len(h.Sample) != 0 {
		t.Errorf("%+v", h)
	}
	if game.Lane(h.X) != 0 {
		t.Error("x=100 should be lane 0")
	}

	// Empty params and samples are dropped
	h, err = hitObject("448,192,10,1,,::1")
	if nil != err {
		t.Fatal(err)
	}
	if len(h.Params) != 0 || len(h.Sample) != 1 || h.Sample[0] != 1 {
		t.Errorf("%+v", h)
	}
}

func TestLineEndings(t *testing.T) {
	p := DefaultParser{}
	text := "\ufeffosu file format v14\r\n\r\n[General]\r\nAudioFilename:  a.ogg\r\n\r\n\r\n[HitObjects]\r256,0,1,1,0\r"
	chart, err := p.Parse(text)
	if nil != err {
		t.Fatal(err)
	}
	if chart.AudioFilename() != "a.ogg" {
		t.Errorf("%q", chart.AudioFilename())
	}
	if len(chart.HitObjects) != 1 || chart.HitObjects[0].X != 256 {
		t.Errorf("%+v", chart.HitObjects)
	}
}

func TestLastWriteWins(t *testing.T) {
	p := DefaultParser{}
	chart, err := p.Parse("osu file format v14\n[Metadata]\nTitle:First\nTitle: Second\nSource:a:b\n")
	if nil != err {
		t.Fatal(err)
	}
	if chart.Metadata["Title"] != "Second" {
		t.Errorf("got %q", chart.Metadata["Title"])
	}
	// Only the first colon splits
	if chart.Metadata["Source"] != "a:b" {
		t.Errorf("got %q", chart.Metadata["Source"])
	}
}

var errorTests = map[string]error{
	"":                                         ErrUnsupportedVersion,
	"osu file format v13\n[General]\n":         ErrUnsupportedVersion,
	"osu file format v14\nAudioFilename: a\n":  ErrExpectedSectionHeader,
	"osu file format v14\n[General\nMode: 3\n": ErrExpectedSectionHeader,
	"osu file format v14\n[General]\nMode\n":   ErrMissingKey,
	"osu file format v14\n[General]\n: 3\n":    ErrMissingKey,
	"osu file format v14\n[HitObjects]\n1,2\n": ErrMissingKey,
	"osu file format v14\n[HitObjects]\nx,0,5,1\n":               ErrInvalidNumber,
	"osu file format v14\n[HitObjects]\n1,0,5,1,zz\n":            ErrInvalidNumber,
	"osu file format v14\n[HitObjects]\n1,0,5,1,0:a:0\n":         ErrInvalidNumber,
	"osu file format v14\n[HitObjects]\n1,0,5,1,0\n[Broken\n":    ErrMissingKey,
	"osu file format v14   \n[General]\n":                       ErrUnsupportedVersion,
	" osu file format v14\n[General]\n":                         ErrUnsupportedVersion,
	"osu file format v14\n [General]\nMode: 3\n":                ErrExpectedSectionHeader,
	"osu file format v14\n[General] \nMode: 3\n":                ErrExpectedSectionHeader,
	"osu file format v14\n[General]\nMode: 3\n [Metadata]\n":    ErrMissingKey,
	"osu file format v14\n[Events]\n [General]\nMode\n":         nil,
	"osu file format v14\n[HitObjects]\n1,0,5,1,0\n[]\n0,0,1,1\n": nil,
}

func TestParseErrors(t *testing.T) {
	p := DefaultParser{}
	for text, expected := range errorTests {
		chart, err := p.Parse(text)
		if expected == nil {
			if nil != err {
				t.Errorf("%q: unexpected error %v", text, err)
			}
			continue
		}
		if !errors.Is(err, expected) {
			t.Log("    text:", text)
			t.Log("     got:", err)
			t.Log("expected:", expected)
			t.Fail()
		}
		if nil != chart {
			t.Errorf("%q: no partial chart should be returned", text)
		}
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Line < 1 {
			t.Errorf("%q: expected a FormatError with a line, got %v", text, err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	p := DefaultParser{}
	times := make([]int, 2000)
	for i := range times {
		times[i] = i * 100
	}
	text := testdata.ChartWithNotes(times...)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := p.Parse(text); nil != err {
			b.Fatal(err)
		}
	}
}

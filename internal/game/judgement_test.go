package game

import (
	"math"
	"testing"
	"time"
)

type judgeTest struct {
	OD    float64
	Delta time.Duration
}

var judgeTests = map[judgeTest]Tier{
	{OD: 7, Delta: 0}:                       Marvelous,
	{OD: 7, Delta: 10 * time.Millisecond}:   Marvelous,
	{OD: 7, Delta: -10 * time.Millisecond}:  Marvelous,
	{OD: 7, Delta: 16 * time.Millisecond}:   Marvelous,
	{OD: 7, Delta: 17 * time.Millisecond}:   Perfect,
	{OD: 7, Delta: 43 * time.Millisecond}:   Perfect,
	{OD: 7, Delta: 50 * time.Millisecond}:   Great,
	{OD: 7, Delta: 76 * time.Millisecond}:   Great,
	{OD: 7, Delta: 106 * time.Millisecond}:  Good,
	{OD: 7, Delta: 130 * time.Millisecond}:  Ok,
	{OD: 7, Delta: 131 * time.Millisecond}:  Miss,
	{OD: 7, Delta: 200 * time.Millisecond}:  Miss,
	{OD: 7, Delta: -200 * time.Millisecond}: Miss,
	{OD: 0, Delta: 64 * time.Millisecond}:   Perfect,
	{OD: 0, Delta: 151 * time.Millisecond}:  Ok,
	{OD: 10, Delta: 34 * time.Millisecond}:  Perfect,
	{OD: 10, Delta: 35 * time.Millisecond}:  Great,
	{OD: 10, Delta: 121 * time.Millisecond}: Ok,
	{OD: 10, Delta: 122 * time.Millisecond}: Miss,

	// Fractional OD, exactly on and just past a window edge
	{OD: 8.3, Delta: 39100 * time.Microsecond}:   Perfect,
	{OD: 8.3, Delta: 39101 * time.Microsecond}:   Great,
	{OD: 7.1, Delta: 129700 * time.Microsecond}:  Ok,
	{OD: 7.1, Delta: 129701 * time.Microsecond}:  Miss,
	{OD: 7.1, Delta: -129700 * time.Microsecond}: Ok,
}

func TestJudge(t *testing.T) {
	for in, expected := range judgeTests {
		out := Judge(in.Delta, in.OD)
		if out != expected {
			t.Log("      OD:", in.OD)
			t.Log("   Delta:", in.Delta)
			t.Log("     Got:", out)
			t.Log("Expected:", expected)
			t.Fail()
		}
	}
}

// Every delta lands in exactly one tier, and windows never shrink as OD drops.
func TestWindowsNested(t *testing.T) {
	for od := 0.0; od <= 10; od += 0.5 {
		for tier := Marvelous; tier < Ok; tier++ {
			if Window(tier, od) > Window(tier+1, od) {
				t.Errorf("OD %v: %v window %v is wider than %v window %v",
					od, tier, Window(tier, od), tier+1, Window(tier+1, od))
			}
			if od > 0 && Window(tier, od) > Window(tier, od-0.5) {
				t.Errorf("OD %v: %v window grew as OD increased", od, tier)
			}
		}
		for ms := 0; ms < 300; ms++ {
			d := time.Duration(ms) * time.Millisecond
			matches := 0
			for tier := Marvelous; tier < Miss; tier++ {
				lower := time.Duration(-1)
				if tier > Marvelous {
					lower = Window(tier-1, od)
				}
				if d > lower && d <= Window(tier, od) {
					matches++
				}
			}
			if d > MissWindow(od) {
				matches++
			}
			if matches != 1 {
				t.Errorf("OD %v delta %v matched %v tiers", od, d, matches)
			}
		}
	}
}

func TestTierScore(t *testing.T) {
	scores := map[Tier]int{Marvelous: 320, Perfect: 300, Great: 200, Good: 100, Ok: 50, Miss: 0}
	for tier, s := range scores {
		if tier.Score() != s {
			t.Errorf("%v: got %v, expected %v", tier, tier.Score(), s)
		}
	}
	if Tier(42).String() != "Unknown" {
		t.Error("out of range tier should stringify as Unknown")
	}
}

func TestAccuracy(t *testing.T) {
	var tally Tally
	if acc := tally.Accuracy(); acc != 1 || math.IsNaN(acc) {
		t.Errorf("empty tally should be 100%%, got %v", acc)
	}

	tally.Add(Marvelous)
	if tally.Accuracy() != 1 {
		t.Errorf("single marvelous should be 100%%, got %v", tally.Accuracy())
	}

	tally.Add(Miss)
	if tally.Accuracy() != 0.5 {
		t.Errorf("got %v", tally.Accuracy())
	}

	tally.Reset()
	tally.Add(Perfect)
	tally.Add(Great)
	tally.Add(Good)
	tally.Add(Ok)
	expected := float64(300+200+100+50) / float64(305*4)
	if math.Abs(tally.Accuracy()-expected) > 1e-12 {
		t.Errorf("got %v, expected %v", tally.Accuracy(), expected)
	}
	if tally.Judged() != 4 {
		t.Errorf("judged %v", tally.Judged())
	}
	if tally.Score() != 650 {
		t.Errorf("score %v", tally.Score())
	}
}

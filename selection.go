package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/fourk/internal/game"
)

// Keys that pick an entry, q is kept for quitting.
const labels = "1234567890abcdefghijklmnoprstuvwxyz"

type entry struct {
	Set   *game.ChartSet
	Chart *game.Chart
}

// entries flattens every set, ordered by set name then difficulty name.
func entries(sets []*game.ChartSet) []entry {
	es := []entry{}
	for _, s := range sets {
		charts := append([]*game.Chart(nil), s.Charts...)
		sort.SliceStable(charts, func(i, j int) bool {
			return charts[i].Version() < charts[j].Version()
		})
		for _, c := range charts {
			es = append(es, entry{Set: s, Chart: c})
		}
	}
	return es
}

// pick maps a label on the given page to an entry index.
func pick(r rune, page, count int) (int, bool) {
	i := strings.IndexRune(labels, r)
	if i < 0 {
		return 0, false
	}
	i += page * len(labels)
	if i >= count {
		return 0, false
	}
	return i, true
}

func pages(count int) int {
	if count == 0 {
		return 1
	}
	return (count + len(labels) - 1) / len(labels)
}

func listEntries(w io.Writer, es []entry, page int) {
	fmt.Fprintf(w, "\033[H\033[2J")
	start := page * len(labels)
	for i := start; i < len(es) && i < start+len(labels); i++ {
		e := es[i]
		fmt.Fprintf(w, "%2v) %5v  %v [%v]\r\n",
			string(labels[i-start]), len(e.Chart.HitObjects), e.Chart.Title(), e.Chart.Version())
	}
	fmt.Fprintf(w, "\r\npage %v/%v, +/- to turn, q to quit\r\n", page+1, pages(len(es)))
}

// resolveOD prefers a non-negative flag, then the chart, then the default.
func resolveOD(flag float64, c *game.Chart, fallback float64) float64 {
	if flag >= 0 {
		return flag
	}
	if v, ok := c.Difficulty["OverallDifficulty"]; ok {
		if od, err := strconv.ParseFloat(v, 64); nil == err {
			return od
		}
	}
	return fallback
}

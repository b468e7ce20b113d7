// Package testdata provides small charts and archives for tests.
package testdata

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zip"
)

const Chart = `osu file format v14

[General]
AudioFilename: audio.mp3
AudioLeadIn: 0
PreviewTime: 1000
Mode: 3

[Metadata]
Title:Test Song
Artist:Someone
Creator:Mapper
Version:Normal

[Difficulty]
HPDrainRate:8
CircleSize:4
OverallDifficulty:7
ApproachRate:5

[Events]
//Background and Video events
0,0,"bg.jpg",0,0

[TimingPoints]
0,500,4,2,1,60,1,0

[HitObjects]
64,192,1000,1,0,0:0:0:0:
192,192,1500,1,0,0:0:0:0:
320,192,2000,128,0,2500:0:0:0:0:
448,192,2500,1,0,0:0:0:0:
64,192,3000,5,2,0:0:0:70:hit.wav
`

// ChartWithNotes builds a minimal chart with one circle per time, cycling
// through the lanes.
func ChartWithNotes(times ...int) string {
	var b strings.Builder
	b.WriteString("osu file format v14\n\n[General]\nAudioFilename: audio.mp3\nAudioLeadIn: 0\n\n[HitObjects]\n")
	for i, t := range times {
		x := 64 + 128*(i%4)
		fmt.Fprintf(&b, "%d,192,%d,1,0,0:0:0:0:\n", x, t)
	}
	return b.String()
}

// Archive zips the given entries, in the order given.
func Archive(entries ...[2]string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		f, err := w.Create(e[0])
		if nil != err {
			panic(err)
		}
		if _, err := f.Write([]byte(e[1])); nil != err {
			panic(err)
		}
	}
	if err := w.Close(); nil != err {
		panic(err)
	}
	return buf.Bytes()
}

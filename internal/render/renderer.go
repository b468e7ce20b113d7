package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int)
	RenderLoop(period time.Duration, render func(now time.Time) bool)
	Clear()
	Fill(row, column int, message string)
	FillColor(row, column int, color color.RGBA, message string)
}

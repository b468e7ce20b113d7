package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/fourk/internal/game"
)

type DefaultTheme struct {
	Note    color.RGBA
	Outline color.RGBA
}

const (
	noteSym = "⬤"
	barSym  = "◯"
	heldSym = "●"
)

var tierColors = [...]color.RGBA{
	game.Marvelous: {173, 236, 236, 255}, // light blue
	game.Perfect:   {236, 195, 0, 255},   // yellow
	game.Great:     {0, 236, 128, 255},   // green
	game.Good:      {0, 118, 236, 255},   // blue
	game.Ok:        {106, 106, 106, 255}, // grey
	game.Miss:      {236, 30, 0, 255},    // red
}

// fade scales a color towards black.
func fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: c.A,
	}
}

func paint(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(lane int, opacity float64) string {
	return paint(fade(t.Note, opacity), noteSym)
}

func (t *DefaultTheme) RenderHitField(lane int, pressed bool, opacity float64) string {
	if pressed {
		return paint(fade(t.Outline, opacity), heldSym)
	}
	return paint(fade(t.Outline, opacity), barSym)
}

func (t *DefaultTheme) TierColor(tier game.Tier) color.RGBA {
	if tier < game.Marvelous || tier > game.Miss {
		return tierColors[game.Miss]
	}
	return tierColors[tier]
}

func (t *DefaultTheme) RenderTier(tier game.Tier, opacity float64) string {
	return paint(fade(t.TierColor(tier), opacity), fmt.Sprintf("%-9s", tier))
}

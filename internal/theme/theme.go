package theme

import (
	"image/color"

	"git.lost.host/meutraa/fourk/internal/game"
)

type Theme interface {
	RenderNote(lane int, opacity float64) string
	RenderHitField(lane int, pressed bool, opacity float64) string
	RenderTier(tier game.Tier, opacity float64) string
	TierColor(tier game.Tier) color.RGBA
}

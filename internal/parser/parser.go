package parser

import "git.lost.host/meutraa/fourk/internal/game"

const (
	Extension = ".osu"
	Version   = "osu file format v14"
)

type Parser interface {
	Parse(text string) (*game.Chart, error)
}

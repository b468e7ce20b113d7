package config

import (
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

type Gameplay struct {
	ScrollSpeed float64 `ini:"scroll_speed"` // rows per second
	HitPosition int     `ini:"hit_position"` // rows above the bottom of the screen
}

type Skin struct {
	CircleSize   int    `ini:"circle_size"` // columns between lanes
	NoteColor    string `ini:"note_color"`
	OutlineColor string `ini:"outline_color"`
}

type Bindings struct {
	Lanes string `ini:"lanes"`
}

// Settings is the persisted player configuration.
type Settings struct {
	Gameplay Gameplay
	Skin     Skin
	Bindings Bindings

	Keys    KeyTable
	Note    color.RGBA
	Outline color.RGBA
}

func DefaultSettings() *Settings {
	s := &Settings{
		Gameplay: Gameplay{ScrollSpeed: 40, HitPosition: 4},
		Skin:     Skin{CircleSize: 6, NoteColor: "ec1e00", OutlineColor: "ffffff"},
		Bindings: Bindings{Lanes: "dfjk"},
	}
	if err := s.validate(); nil != err {
		panic(err)
	}
	return s
}

func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, errors.Errorf("color %q is not rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if nil != err {
		return color.RGBA{}, errors.Wrapf(err, "color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

type section struct {
	name string
	v    interface{}
}

// sections lists the persisted sections in file order.
func (s *Settings) sections() []section {
	return []section{
		{"Gameplay", &s.Gameplay},
		{"Skin", &s.Skin},
		{"Bindings", &s.Bindings},
	}
}

// validate fills the derived fields, rejecting bad bindings and colors.
func (s *Settings) validate() error {
	var err error
	if s.Keys, err = ParseKeys(s.Bindings.Lanes); nil != err {
		return errors.Wrap(err, "bindings")
	}
	if s.Note, err = ParseColor(s.Skin.NoteColor); nil != err {
		return errors.Wrap(err, "skin")
	}
	if s.Outline, err = ParseColor(s.Skin.OutlineColor); nil != err {
		return errors.Wrap(err, "skin")
	}
	if s.Gameplay.ScrollSpeed <= 0 {
		return errors.Errorf("gameplay: scroll speed %v must be positive", s.Gameplay.ScrollSpeed)
	}
	return nil
}

// LoadSettings reads path over the defaults. A missing file gives the defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	cfg, err := ini.Load(path)
	if nil != err {
		return nil, errors.Wrapf(err, "load settings %v", path)
	}
	for _, sec := range s.sections() {
		if err := cfg.Section(sec.name).MapTo(sec.v); nil != err {
			return nil, errors.Wrapf(err, "settings section %v", sec.name)
		}
	}
	if err := s.validate(); nil != err {
		return nil, errors.Wrapf(err, "settings %v", path)
	}
	return s, nil
}

// Override applies command line flags that were given.
func (s *Settings) Override(keys string, scrollSpeed float64) error {
	if keys != "" {
		s.Bindings.Lanes = keys
	}
	if scrollSpeed > 0 {
		s.Gameplay.ScrollSpeed = scrollSpeed
	}
	return s.validate()
}

func SaveSettings(path string, s *Settings) error {
	cfg := ini.Empty()
	for _, sec := range s.sections() {
		if err := cfg.Section(sec.name).ReflectFrom(sec.v); nil != err {
			return errors.Wrapf(err, "settings section %v", sec.name)
		}
	}
	return errors.Wrapf(cfg.SaveTo(path), "save settings %v", path)
}

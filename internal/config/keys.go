package config

import (
	"git.lost.host/meutraa/fourk/internal/game"
	"github.com/pkg/errors"
)

var (
	ErrKeyCount     = errors.New("wrong number of keys")
	ErrDuplicateKey = errors.New("key bound to more than one lane")
)

// KeyTable holds the key bound to each lane, in lane order.
type KeyTable [game.NKeys]rune

func ParseKeys(s string) (KeyTable, error) {
	var table KeyTable
	keys := []rune(s)
	if len(keys) != game.NKeys {
		return table, errors.Wrapf(ErrKeyCount, "%q has %d keys, need %d", s, len(keys), game.NKeys)
	}
	for i, r := range keys {
		for j := 0; j < i; j++ {
			if keys[j] == r {
				return table, errors.Wrapf(ErrDuplicateKey, "%q is bound to lanes %d and %d", r, j, i)
			}
		}
		table[i] = r
	}
	return table, nil
}

// Lane returns the lane bound to r.
func (k KeyTable) Lane(r rune) (int, bool) {
	for i, c := range k {
		if r == c {
			return i, true
		}
	}
	return -1, false
}

func (k KeyTable) String() string {
	return string(k[:])
}

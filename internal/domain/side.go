package domain

import (
	"strings"

	"github.com/pkg/errors"
)

type Side byte

const (
	Dark  = Side('B')
	Light = Side('W')
)

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "black", "b", "x":
		return Dark, nil
	case "light", "white", "w", "o":
		return Light, nil
	default:
		return 0, errors.WithMessagef(ErrUnknownSide, "'%s'", s)
	}
}

func (s Side) Valid() bool {
	return s == Dark || s == Light
}

func (s Side) Opponent() Side {
	if s == Dark {
		return Light
	}
	return Dark
}

func (s Side) Disc() Cell {
	return Cell(s)
}

func (s Side) String() string {
	switch s {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "unknown"
	}
}

type Cell byte

const Empty = Cell(0)

func (c Cell) Rune() rune {
	if c == Empty {
		return '.'
	}
	return rune(c)
}

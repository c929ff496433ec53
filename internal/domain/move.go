package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) Valid() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// String renders the move as column letter plus 1-based row, "d3" is {Row: 2, Col: 3}.
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Move{}, errors.WithMessagef(ErrInvalidMove, "'%s'", s)
	}
	m := Move{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}
	if !m.Valid() {
		return Move{}, errors.WithMessagef(ErrOutOfRange, "move '%s'", s)
	}
	return m, nil
}

type Score struct {
	Dark  int `json:"dark"`
	Light int `json:"light"`
}

func (s Score) Of(side Side) int {
	if side == Dark {
		return s.Dark
	}
	return s.Light
}

func (s Score) Total() int {
	return s.Dark + s.Light
}

// Leader returns the side with more discs, false on a tie.
func (s Score) Leader() (Side, bool) {
	switch {
	case s.Dark > s.Light:
		return Dark, true
	case s.Light > s.Dark:
		return Light, true
	default:
		return 0, false
	}
}

package jsonfile

import (
	"io"
	"os"

	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/kiryu-dev/othello/pkg/utils"
	"github.com/pkg/errors"
)

type Position struct {
	Board  domain.Board `json:"board"`
	ToMove domain.Side  `json:"to_move"`
}

type Record struct {
	*domain.GameState
	Result domain.GameResult `json:"result"`
}

type repository struct{}

func New() repository {
	return repository{}
}

type rawPosition struct {
	Board  []string    `json:"board"`
	ToMove domain.Side `json:"to_move"`
}

// LoadPosition reads a starting position. Dark moves first when to_move is omitted.
func (r repository) LoadPosition(path string) (Position, error) {
	file, err := os.Open(path)
	if err != nil {
		return Position{}, errors.WithMessagef(err, "open position file '%s'", path)
	}
	defer func() {
		_ = file.Close()
	}()
	raw, err := utils.DecodeJson[rawPosition](file)
	if err != nil {
		return Position{}, errors.WithMessage(err, "read position")
	}
	board, err := domain.ParseBoard(raw.Board)
	if err != nil {
		return Position{}, errors.WithMessage(err, "parse position board")
	}
	pos := Position{Board: board, ToMove: raw.ToMove}
	if pos.ToMove == 0 {
		pos.ToMove = domain.Dark
	}
	return pos, nil
}

// SaveRecord writes the game as a single json line.
func (r repository) SaveRecord(w io.Writer, state *domain.GameState, result domain.GameResult) error {
	if err := utils.EncodeJson(w, Record{GameState: state, Result: result}); err != nil {
		return errors.WithMessagef(err, "write record of game '%s'", state.Uuid)
	}
	return nil
}

package game

import (
	"github.com/pkg/errors"
)

var (
	ErrGameFinished    = errors.New("game is finished")
	ErrComputerTurn    = errors.New("side to move is played by the computer")
	errUnexpectedSkip  = errors.New("engine skipped a turn that has legal moves")
	errUnknownGameSide = errors.New("unknown side in game state")
)

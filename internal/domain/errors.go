package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfRange   = errors.New("coordinates out of range")
	ErrIllegalMove  = errors.New("illegal move")
	ErrUnknownSide  = errors.New("unknown side")
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidMove  = errors.New("invalid move notation")
	ErrInvalidDepth = errors.New("search depth must be positive")
)

package domain

import (
	"context"
	"time"
)

type Controller byte

const (
	Human = Controller(iota)
	Computer
)

type status byte

const (
	InProgress = status(iota)
	Finished
)

func (s status) String() string {
	if s == Finished {
		return "finished"
	}
	return "in progress"
}

type Turn struct {
	Side Side  `json:"side"`
	Move *Move `json:"move,omitempty"`
	Pass bool  `json:"pass,omitempty"`
}

type GameState struct {
	Uuid        string              `json:"uuid"`
	Board       Board               `json:"board"`
	CurrentMove Side                `json:"current_move"`
	Controllers map[Side]Controller `json:"controllers"`
	Status      status              `json:"status"`
	History     []Turn              `json:"history"`
	StartedAt   time.Time           `json:"started_at"`
	EndedAt     time.Time           `json:"ended_at"`
}

func (s *GameState) IsComputerTurn() bool {
	return s.Status == InProgress && s.Controllers[s.CurrentMove] == Computer
}

type GameResult struct {
	Score  Score `json:"score"`
	Winner *Side `json:"winner,omitempty"`
}

type GameOption func(s *GameState)

func WithComputer(sides ...Side) GameOption {
	return func(s *GameState) {
		for _, side := range sides {
			s.Controllers[side] = Computer
		}
	}
}

func WithPosition(board Board, toMove Side) GameOption {
	return func(s *GameState) {
		s.Board = board
		s.CurrentMove = toMove
	}
}

type SearchResult struct {
	Move  Move
	Found bool
	Score int
	Nodes int64
}

type EngineUseCase interface {
	ChooseMove(ctx context.Context, board Board, side Side, depth int) (SearchResult, error)
}

type GameUseCase interface {
	Start(opts ...GameOption) *GameState
	PlayMove(state *GameState, move Move) error
	PlayComputer(ctx context.Context, state *GameState) (SearchResult, error)
	Result(state *GameState) GameResult
}

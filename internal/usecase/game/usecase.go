package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultDepth = 5

type useCase struct {
	engine domain.EngineUseCase
	depths map[domain.Side]int
	logger *zap.Logger
}

type Option func(u *useCase)

func WithDepth(depth int) Option {
	return func(u *useCase) {
		u.depths[domain.Dark] = depth
		u.depths[domain.Light] = depth
	}
}

func WithSideDepth(side domain.Side, depth int) Option {
	return func(u *useCase) {
		u.depths[side] = depth
	}
}

func New(engine domain.EngineUseCase, logger *zap.Logger, opts ...Option) useCase {
	u := useCase{
		engine: engine,
		depths: map[domain.Side]int{
			domain.Dark:  defaultDepth,
			domain.Light: defaultDepth,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func (u useCase) Start(opts ...domain.GameOption) *domain.GameState {
	state := &domain.GameState{
		Uuid:        uuid.NewString(),
		Board:       domain.NewBoard(),
		CurrentMove: domain.Dark,
		Controllers: map[domain.Side]domain.Controller{
			domain.Dark:  domain.Human,
			domain.Light: domain.Human,
		},
		Status:    domain.InProgress,
		StartedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(state)
	}
	u.logger.Info("game started",
		zap.String("game uuid", state.Uuid),
		zap.Any("controllers", state.Controllers),
		zap.Stringer("to move", state.CurrentMove),
	)
	u.settle(state)
	return state
}

func (u useCase) PlayMove(state *domain.GameState, move domain.Move) error {
	if state.Status == domain.Finished {
		return ErrGameFinished
	}
	if state.Controllers[state.CurrentMove] == domain.Computer {
		return errors.WithMessagef(ErrComputerTurn, "%s to move", state.CurrentMove)
	}
	if err := u.executeMove(state, move); err != nil {
		return errors.WithMessage(err, "execute player's move")
	}
	return nil
}

func (u useCase) PlayComputer(ctx context.Context, state *domain.GameState) (domain.SearchResult, error) {
	if state.Status == domain.Finished {
		return domain.SearchResult{}, ErrGameFinished
	}
	side := state.CurrentMove
	result, err := u.engine.ChooseMove(ctx, state.Board, side, u.depths[side])
	if err != nil {
		return domain.SearchResult{}, errors.WithMessage(err, "choose move")
	}
	if !result.Found {
		if state.Board.HasLegalMove(side) {
			return domain.SearchResult{}, errUnexpectedSkip
		}
		u.pass(state)
		u.settle(state)
		return result, nil
	}
	if err := u.executeMove(state, result.Move); err != nil {
		return domain.SearchResult{}, errors.WithMessage(err, "execute computer's move")
	}
	return result, nil
}

func (u useCase) Result(state *domain.GameState) domain.GameResult {
	score := state.Board.Score()
	result := domain.GameResult{Score: score}
	if winner, ok := score.Leader(); ok {
		result.Winner = &winner
	}
	return result
}

func (u useCase) executeMove(state *domain.GameState, move domain.Move) error {
	side := state.CurrentMove
	if !side.Valid() {
		return errUnknownGameSide
	}
	next, err := state.Board.ApplyMove(move, side)
	if err != nil {
		return err
	}
	state.Board = next
	state.History = append(state.History, domain.Turn{Side: side, Move: &move})
	state.CurrentMove = side.Opponent()
	u.settle(state)
	return nil
}

// settle finishes the game when nobody can move and hands the turn back when
// only the side to move is blocked.
func (u useCase) settle(state *domain.GameState) {
	if state.Board.IsTerminal() {
		state.Status = domain.Finished
		state.EndedAt = time.Now()
		result := u.Result(state)
		u.logger.Info("game over",
			zap.String("game uuid", state.Uuid),
			zap.Int("dark", result.Score.Dark),
			zap.Int("light", result.Score.Light),
		)
		return
	}
	if !state.Board.HasLegalMove(state.CurrentMove) {
		u.pass(state)
	}
}

func (u useCase) pass(state *domain.GameState) {
	u.logger.Info("no valid moves, switching back",
		zap.String("game uuid", state.Uuid),
		zap.Stringer("side", state.CurrentMove),
	)
	state.History = append(state.History, domain.Turn{Side: state.CurrentMove, Pass: true})
	state.CurrentMove = state.CurrentMove.Opponent()
}

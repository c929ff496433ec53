package engine

import (
	"context"
	"time"

	"github.com/kiryu-dev/othello/internal/config"
	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type useCase struct {
	workers   int
	timeLimit time.Duration
	heuristic Heuristic
	logger    *zap.Logger
}

func New(cfg config.EngineConfig, logger *zap.Logger) useCase {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return useCase{
		workers:   workers,
		timeLimit: cfg.TimeLimit,
		heuristic: heuristicFromConfig(cfg.Heuristic),
		logger:    logger,
	}
}

// ChooseMove picks the move for side that is best after a depth-ply search,
// counting the root move as the first ply. Found is false when side must pass.
func (u useCase) ChooseMove(ctx context.Context, board domain.Board, side domain.Side, depth int) (domain.SearchResult, error) {
	if !side.Valid() {
		return domain.SearchResult{}, errors.WithMessagef(domain.ErrUnknownSide, "side %d", side)
	}
	if depth < 1 {
		return domain.SearchResult{}, errors.WithMessagef(domain.ErrInvalidDepth, "got %d", depth)
	}
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		u.logger.Debug("no legal move", zap.Stringer("side", side))
		return domain.SearchResult{}, nil
	}
	if u.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeLimit)
		defer cancel()
	}
	var (
		start = time.Now()
		nodes = atomic.NewInt64(0)
		s     = newSearch(ctx, side, u.heuristic, nodes)
		move  domain.Move
		score int
		err   error
	)
	if u.workers > 1 && len(moves) > 1 {
		move, score, err = s.splitRoot(board, moves, depth, u.workers)
	} else {
		move, score, err = s.bestMove(board, moves, depth)
	}
	if err != nil {
		return domain.SearchResult{}, errors.WithMessage(err, "search game tree")
	}
	u.logger.Debug("search finished",
		zap.Stringer("side", side),
		zap.Stringer("move", move),
		zap.Int("score", score),
		zap.Int("depth", depth),
		zap.Int64("nodes", nodes.Load()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return domain.SearchResult{
		Move:  move,
		Found: true,
		Score: score,
		Nodes: nodes.Load(),
	}, nil
}

func (u useCase) Evaluate(board domain.Board, side domain.Side) int {
	return u.heuristic.Evaluate(board, side)
}

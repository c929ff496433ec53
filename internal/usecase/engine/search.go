package engine

import (
	"context"
	"math"

	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

const inf = math.MaxInt32

// search scores positions for a fixed root side. Leaf values are always root
// side minus opponent, so the side to move follows the maximizing flag.
type search struct {
	ctx       context.Context
	done      <-chan struct{}
	root      domain.Side
	heuristic Heuristic
	nodes     *atomic.Int64
}

func newSearch(ctx context.Context, root domain.Side, h Heuristic, nodes *atomic.Int64) *search {
	return &search{
		ctx:       ctx,
		done:      ctx.Done(),
		root:      root,
		heuristic: h,
		nodes:     nodes,
	}
}

func (s *search) alphaBeta(board domain.Board, depth, alpha, beta int, maximizing bool) (int, error) {
	select {
	case <-s.done:
		return 0, errors.WithMessage(s.ctx.Err(), "search aborted")
	default:
	}
	s.nodes.Inc()
	if depth == 0 || board.IsTerminal() {
		return s.heuristic.Evaluate(board, s.root), nil
	}
	side := s.root
	if !maximizing {
		side = side.Opponent()
	}
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		// forced pass: the board stays, the turn and the depth still move on
		return s.alphaBeta(board, depth-1, alpha, beta, !maximizing)
	}
	best := inf
	if maximizing {
		best = -inf
	}
	for _, m := range moves {
		child, err := board.ApplyMove(m, side)
		if err != nil {
			return 0, errors.WithMessagef(err, "apply move %s", m)
		}
		v, err := s.alphaBeta(child, depth-1, alpha, beta, !maximizing)
		if err != nil {
			return 0, err
		}
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, best)
		} else {
			best = min(best, v)
			beta = min(beta, best)
		}
		if beta <= alpha {
			break
		}
	}
	return best, nil
}

// bestMove runs the root ply sequentially, carrying alpha across siblings.
func (s *search) bestMove(board domain.Board, moves []domain.Move, depth int) (domain.Move, int, error) {
	var (
		best      domain.Move
		bestScore = -inf
		alpha     = -inf
	)
	for _, m := range moves {
		child, err := board.ApplyMove(m, s.root)
		if err != nil {
			return domain.Move{}, 0, errors.WithMessagef(err, "apply root move %s", m)
		}
		v, err := s.alphaBeta(child, depth-1, alpha, inf, false)
		if err != nil {
			return domain.Move{}, 0, err
		}
		if v > bestScore {
			best, bestScore = m, v
		}
		alpha = max(alpha, bestScore)
	}
	return best, bestScore, nil
}

// splitRoot searches every root move with a full window on its own goroutine.
// Picking the first strictly best score in row-major order gives the same move
// and score as bestMove.
func (s *search) splitRoot(board domain.Board, moves []domain.Move, depth, workers int) (domain.Move, int, error) {
	scores := make([]int, len(moves))
	group, ctx := errgroup.WithContext(s.ctx)
	group.SetLimit(workers)
	for i, m := range moves {
		group.Go(func() error {
			child, err := board.ApplyMove(m, s.root)
			if err != nil {
				return errors.WithMessagef(err, "apply root move %s", m)
			}
			worker := newSearch(ctx, s.root, s.heuristic, s.nodes)
			v, err := worker.alphaBeta(child, depth-1, -inf, inf, false)
			if err != nil {
				return err
			}
			scores[i] = v
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return domain.Move{}, 0, err
	}
	best, bestScore := 0, -inf
	for i, v := range scores {
		if v > bestScore {
			best, bestScore = i, v
		}
	}
	return moves[best], bestScore, nil
}

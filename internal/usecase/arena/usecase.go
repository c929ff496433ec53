package arena

import (
	"context"
	"math/rand"

	"github.com/kiryu-dev/othello/internal/config"
	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/kiryu-dev/othello/internal/usecase/game"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Games      int     `json:"games"`
	DarkWins   int     `json:"dark_wins"`
	LightWins  int     `json:"light_wins"`
	Draws      int     `json:"draws"`
	MeanMargin float64 `json:"mean_margin"`
	StdMargin  float64 `json:"std_margin"`
	Nodes      int64   `json:"nodes"`
}

type useCase struct {
	engine domain.EngineUseCase
	cfg    config.ArenaConfig
	logger *zap.Logger
}

func New(engine domain.EngineUseCase, cfg config.ArenaConfig, logger *zap.Logger) useCase {
	return useCase{
		engine: engine,
		cfg:    cfg,
		logger: logger,
	}
}

// Run plays cfg.Games computer games. Game i starts from a random opening drawn
// with seed cfg.Seed+i, so a run is reproducible.
func (u useCase) Run(ctx context.Context) (Summary, []*domain.GameState, error) {
	var (
		games    = make([]*domain.GameState, u.cfg.Games)
		nodes    = atomic.NewInt64(0)
		finished = atomic.NewInt32(0)
		play     = game.New(u.engine, u.logger,
			game.WithSideDepth(domain.Dark, u.cfg.DarkDepth),
			game.WithSideDepth(domain.Light, u.cfg.LightDepth),
		)
	)
	group, ctx := errgroup.WithContext(ctx)
	if u.cfg.Workers > 0 {
		group.SetLimit(u.cfg.Workers)
	}
	for i := range games {
		group.Go(func() error {
			board, toMove := openingPosition(rand.New(rand.NewSource(u.cfg.Seed+int64(i))), u.cfg.OpeningPlies)
			state := play.Start(
				domain.WithPosition(board, toMove),
				domain.WithComputer(domain.Dark, domain.Light),
			)
			for state.Status == domain.InProgress {
				res, err := play.PlayComputer(ctx, state)
				if err != nil {
					return errors.WithMessagef(err, "play game %d", i)
				}
				nodes.Add(res.Nodes)
			}
			games[i] = state
			u.logger.Info("arena game finished",
				zap.Int("game", i),
				zap.String("game uuid", state.Uuid),
				zap.Int32("finished", finished.Inc()),
				zap.Int("total", len(games)),
			)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Summary{}, nil, err
	}
	summary := summarize(play, games)
	summary.Nodes = nodes.Load()
	return summary, games, nil
}

// openingPosition plays plies random legal moves from the initial board.
func openingPosition(rng *rand.Rand, plies int) (domain.Board, domain.Side) {
	board, side := domain.NewBoard(), domain.Dark
	for i := 0; i < plies && !board.IsTerminal(); i++ {
		moves := board.LegalMoves(side)
		if len(moves) > 0 {
			next, err := board.ApplyMove(moves[rng.Intn(len(moves))], side)
			if err != nil {
				break
			}
			board = next
		}
		side = side.Opponent()
	}
	return board, side
}

func summarize(play domain.GameUseCase, games []*domain.GameState) Summary {
	summary := Summary{Games: len(games)}
	margins := make([]float64, 0, len(games))
	for _, state := range games {
		result := play.Result(state)
		switch {
		case result.Winner == nil:
			summary.Draws++
		case *result.Winner == domain.Dark:
			summary.DarkWins++
		default:
			summary.LightWins++
		}
		margins = append(margins, float64(result.Score.Dark-result.Score.Light))
	}
	if len(margins) == 0 {
		return summary
	}
	summary.MeanMargin = stat.Mean(margins, nil)
	if len(margins) > 1 {
		summary.StdMargin = stat.StdDev(margins, nil)
	}
	return summary
}

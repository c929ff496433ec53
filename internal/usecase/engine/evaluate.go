package engine

import (
	"github.com/kiryu-dev/othello/internal/config"
	"github.com/kiryu-dev/othello/internal/domain"
)

var positionWeights = [domain.Size][domain.Size]int{
	{100, -10, 11, 6, 6, 11, -10, 100},
	{-10, -20, 1, 2, 2, 1, -20, -10},
	{11, 1, 3, 4, 4, 3, 1, 11},
	{6, 2, 4, 3, 3, 4, 2, 6},
	{6, 2, 4, 3, 3, 4, 2, 6},
	{11, 1, 3, 4, 4, 3, 1, 11},
	{-10, -20, 1, 2, 2, 1, -20, -10},
	{100, -10, 11, 6, 6, 11, -10, 100},
}

// Heuristic weighs the disc, mobility and corner differentials. The positional
// table is fixed.
type Heuristic struct {
	Disc     int
	Mobility int
	Corner   int
}

func DefaultHeuristic() Heuristic {
	return Heuristic{Disc: 10, Mobility: 5, Corner: 100}
}

func heuristicFromConfig(cfg config.HeuristicConfig) Heuristic {
	return Heuristic{Disc: cfg.Disc, Mobility: cfg.Mobility, Corner: cfg.Corner}
}

// Evaluate scores board from the point of view of side, whoever is to move.
func (h Heuristic) Evaluate(board domain.Board, side domain.Side) int {
	opp := side.Opponent()
	own, other := side.Disc(), opp.Disc()

	score := board.Score()
	discs := score.Of(side) - score.Of(opp)
	mobility := board.Mobility(side) - board.Mobility(opp)

	positional := 0
	for r := range board {
		for c, cell := range board[r] {
			switch cell {
			case own:
				positional += positionWeights[r][c]
			case other:
				positional -= positionWeights[r][c]
			}
		}
	}

	corners := 0
	for _, m := range domain.Corners() {
		switch board[m.Row][m.Col] {
		case own:
			corners++
		case other:
			corners--
		}
	}

	return discs*h.Disc + mobility*h.Mobility + positional + corners*h.Corner
}

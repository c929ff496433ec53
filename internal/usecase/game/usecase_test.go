package game

import (
	"context"
	"testing"

	"github.com/kiryu-dev/othello/internal/config"
	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/kiryu-dev/othello/internal/usecase/engine"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEngine struct {
	result domain.SearchResult
	err    error
	calls  int
}

func (s *stubEngine) ChooseMove(_ context.Context, _ domain.Board, _ domain.Side, _ int) (domain.SearchResult, error) {
	s.calls++
	return s.result, s.err
}

func mustBoard(t *testing.T, rows ...string) domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(rows)
	require.NoError(t, err)
	return b
}

func newGame(e domain.EngineUseCase, opts ...Option) useCase {
	return New(e, zap.NewNop(), opts...)
}

func TestStart(t *testing.T) {
	u := newGame(&stubEngine{})
	state := u.Start()
	assert.NotEmpty(t, state.Uuid)
	assert.Equal(t, domain.NewBoard(), state.Board)
	assert.Equal(t, domain.Dark, state.CurrentMove)
	assert.Equal(t, domain.InProgress, state.Status)
	assert.False(t, state.IsComputerTurn())
	assert.NotEqual(t, state.Uuid, u.Start().Uuid)
}

func TestPlayMove(t *testing.T) {
	u := newGame(&stubEngine{})
	state := u.Start()
	require.NoError(t, u.PlayMove(state, domain.Move{Row: 2, Col: 3}))
	assert.Equal(t, domain.Light, state.CurrentMove)
	assert.Equal(t, domain.Score{Dark: 4, Light: 1}, state.Board.Score())
	require.Len(t, state.History, 1)
	assert.Equal(t, domain.Dark, state.History[0].Side)
	assert.Equal(t, &domain.Move{Row: 2, Col: 3}, state.History[0].Move)
}

func TestPlayMoveRejectsIllegal(t *testing.T) {
	u := newGame(&stubEngine{})
	state := u.Start()
	err := u.PlayMove(state, domain.Move{Row: 0, Col: 0})
	assert.True(t, errors.Is(err, domain.ErrIllegalMove))
	err = u.PlayMove(state, domain.Move{Row: 8, Col: 0})
	assert.True(t, errors.Is(err, domain.ErrOutOfRange))
	assert.Equal(t, domain.NewBoard(), state.Board)
	assert.Equal(t, domain.Dark, state.CurrentMove)
	assert.Empty(t, state.History)
}

func TestPlayMoveOnComputerTurn(t *testing.T) {
	u := newGame(&stubEngine{})
	state := u.Start(domain.WithComputer(domain.Dark))
	assert.True(t, state.IsComputerTurn())
	err := u.PlayMove(state, domain.Move{Row: 2, Col: 3})
	assert.True(t, errors.Is(err, ErrComputerTurn))
}

func TestForcedPassAndGameOver(t *testing.T) {
	u := newGame(&stubEngine{})
	board := mustBoard(t,
		"BWW.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"BW......",
	)
	state := u.Start(domain.WithPosition(board, domain.Dark))

	require.NoError(t, u.PlayMove(state, domain.Move{Row: 0, Col: 3}))
	assert.Equal(t, domain.Dark, state.CurrentMove, "light has no move and passes")
	require.Len(t, state.History, 2)
	assert.True(t, state.History[1].Pass)
	assert.Equal(t, domain.Light, state.History[1].Side)
	assert.Equal(t, domain.InProgress, state.Status)

	require.NoError(t, u.PlayMove(state, domain.Move{Row: 7, Col: 2}))
	assert.Equal(t, domain.Finished, state.Status)
	result := u.Result(state)
	assert.Equal(t, domain.Score{Dark: 7}, result.Score)
	require.NotNil(t, result.Winner)
	assert.Equal(t, domain.Dark, *result.Winner)

	err := u.PlayMove(state, domain.Move{Row: 7, Col: 3})
	assert.True(t, errors.Is(err, ErrGameFinished))
	_, err = u.PlayComputer(context.Background(), state)
	assert.True(t, errors.Is(err, ErrGameFinished))
}

func TestStartFromBlockedSide(t *testing.T) {
	u := newGame(&stubEngine{})
	board := mustBoard(t,
		"BWW.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	state := u.Start(domain.WithPosition(board, domain.Light))
	assert.Equal(t, domain.Dark, state.CurrentMove)
	require.Len(t, state.History, 1)
	assert.True(t, state.History[0].Pass)
}

func TestResultDraw(t *testing.T) {
	u := newGame(&stubEngine{})
	result := u.Result(u.Start())
	assert.Equal(t, domain.Score{Dark: 2, Light: 2}, result.Score)
	assert.Nil(t, result.Winner)
}

func TestPlayComputerUsesSideDepth(t *testing.T) {
	e := &stubEngine{result: domain.SearchResult{Move: domain.Move{Row: 2, Col: 3}, Found: true}}
	u := newGame(e, WithDepth(2), WithSideDepth(domain.Light, 4))
	assert.Equal(t, 2, u.depths[domain.Dark])
	assert.Equal(t, 4, u.depths[domain.Light])

	state := u.Start(domain.WithComputer(domain.Dark))
	res, err := u.PlayComputer(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, domain.Move{Row: 2, Col: 3}, res.Move)
	assert.Equal(t, 1, e.calls)
	assert.Equal(t, domain.Light, state.CurrentMove)
}

func TestPlayComputerErrors(t *testing.T) {
	e := &stubEngine{err: errors.New("boom")}
	u := newGame(e)
	_, err := u.PlayComputer(context.Background(), u.Start())
	assert.EqualError(t, err, "choose move: boom")

	e.err = nil
	e.result = domain.SearchResult{}
	_, err = u.PlayComputer(context.Background(), u.Start())
	assert.True(t, errors.Is(err, errUnexpectedSkip))

	e.result = domain.SearchResult{Move: domain.Move{Row: 0, Col: 0}, Found: true}
	_, err = u.PlayComputer(context.Background(), u.Start())
	assert.True(t, errors.Is(err, domain.ErrIllegalMove))
}

func TestComputerSelfPlay(t *testing.T) {
	play := func() *domain.GameState {
		u := newGame(engine.New(config.Default().Engine, zap.NewNop()), WithDepth(2))
		state := u.Start(domain.WithComputer(domain.Dark, domain.Light))
		for state.Status == domain.InProgress {
			require.True(t, state.IsComputerTurn())
			_, err := u.PlayComputer(context.Background(), state)
			require.NoError(t, err)
		}
		return state
	}
	first := play()
	assert.True(t, first.Board.IsTerminal())
	moves := 0
	for _, turn := range first.History {
		if !turn.Pass {
			moves++
		}
	}
	assert.Equal(t, first.Board.Score().Total()-4, moves)

	second := play()
	assert.Equal(t, first.History, second.History)
	assert.Equal(t, first.Board, second.Board)
}

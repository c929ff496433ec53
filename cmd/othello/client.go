package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/pkg/errors"
)

var errInputClosed = errors.New("input closed")

type client struct {
	game    domain.GameUseCase
	engine  domain.EngineUseCase
	depth   int
	scanner *bufio.Scanner
	out     io.Writer
	seen    int
}

func newClient(game domain.GameUseCase, engine domain.EngineUseCase, depth int, scanner *bufio.Scanner, out io.Writer) *client {
	return &client{
		game:    game,
		engine:  engine,
		depth:   depth,
		scanner: scanner,
		out:     out,
	}
}

func (c *client) play(ctx context.Context, state *domain.GameState) error {
	for state.Status == domain.InProgress {
		c.printTurns(state)
		c.printBoard(state)
		if state.IsComputerTurn() {
			fmt.Fprintf(c.out, "%s is thinking...\n", state.CurrentMove)
			if _, err := c.game.PlayComputer(ctx, state); err != nil {
				return errors.WithMessage(err, "play computer move")
			}
			continue
		}
		if err := c.handleHumanTurn(ctx, state); err != nil {
			return err
		}
	}
	c.printTurns(state)
	c.printBoard(state)
	c.printResult(state)
	return nil
}

func (c *client) handleHumanTurn(ctx context.Context, state *domain.GameState) error {
	for {
		fmt.Fprintf(c.out, "%s to move (e.g. d3, hint): ", state.CurrentMove)
		text, err := c.readLine()
		if err != nil {
			return err
		}
		if text == "hint" {
			res, err := c.engine.ChooseMove(ctx, state.Board, state.CurrentMove, c.depth)
			if err != nil {
				return errors.WithMessage(err, "search hint")
			}
			fmt.Fprintf(c.out, "engine suggests %s (score %d)\n", res.Move, res.Score)
			continue
		}
		move, err := domain.ParseMove(text)
		if err != nil {
			fmt.Fprintln(c.out, err.Error())
			continue
		}
		err = c.game.PlayMove(state, move)
		switch {
		case errors.Is(err, domain.ErrIllegalMove):
			fmt.Fprintf(c.out, "%s is not a legal move\n", move)
		case err != nil:
			return errors.WithMessage(err, "play move")
		default:
			return nil
		}
	}
}

func (c *client) readLine() (string, error) {
	if ok := c.scanner.Scan(); !ok {
		if err := c.scanner.Err(); err != nil {
			return "", errors.WithMessage(err, "read input")
		}
		return "", errInputClosed
	}
	return strings.ToLower(strings.TrimSpace(c.scanner.Text())), nil
}

func (c *client) printTurns(state *domain.GameState) {
	for _, turn := range state.History[c.seen:] {
		if turn.Pass {
			fmt.Fprintf(c.out, "%s has no legal move and passes\n", turn.Side)
		} else {
			fmt.Fprintf(c.out, "%s plays %s\n", turn.Side, turn.Move)
		}
	}
	c.seen = len(state.History)
}

func (c *client) printBoard(state *domain.GameState) {
	score := state.Board.Score()
	fmt.Fprintf(c.out, "\n%s", state.Board)
	fmt.Fprintf(c.out, "dark %d - light %d\n", score.Dark, score.Light)
}

func (c *client) printResult(state *domain.GameState) {
	result := c.game.Result(state)
	if result.Winner == nil {
		fmt.Fprintf(c.out, "draw %d - %d\n", result.Score.Dark, result.Score.Light)
		return
	}
	fmt.Fprintf(c.out, "%s wins %d - %d\n", *result.Winner, result.Score.Of(*result.Winner), result.Score.Of(result.Winner.Opponent()))
}

package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiryu-dev/othello/internal/adapters/jsonfile"
	"github.com/kiryu-dev/othello/internal/config"
	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/kiryu-dev/othello/internal/usecase/engine"
	"github.com/kiryu-dev/othello/internal/usecase/game"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const stopTimeout = 2 * time.Second

var errGameAbandoned = errors.New("game loop did not stop")

func main() {
	cfgPath := flag.String("config", "", "path to config")
	positionPath := flag.String("position", "", "path to json starting position")
	record := flag.Bool("record", false, "print the game record as json when the game ends")
	verbose := flag.Bool("verbose", false, "log engine and game events")
	flag.Parse()
	logger, err := newLogger(*verbose)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	cfg := config.Default()
	if *cfgPath != "" {
		if cfg, err = config.New(*cfgPath); err != nil {
			logger.Fatal(err.Error())
		}
	}
	computer, err := cfg.Game.ComputerSides()
	if err != nil {
		logger.Fatal(err.Error())
	}
	var (
		repo   = jsonfile.New()
		engine = engine.New(cfg.Engine, logger)
		game   = game.New(engine, logger, game.WithDepth(cfg.Engine.Depth))
		opts   = []domain.GameOption{domain.WithComputer(computer...)}
	)
	if *positionPath != "" {
		pos, err := repo.LoadPosition(*positionPath)
		if err != nil {
			logger.Fatal(err.Error())
		}
		opts = append(opts, domain.WithPosition(pos.Board, pos.ToMove))
	}
	state := game.Start(opts...)
	cli := newClient(game, engine, cfg.Engine.Depth, bufio.NewScanner(os.Stdin), os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan error, 1)
	go func() {
		done <- cli.play(ctx, state)
	}()
	err = waitGame(cancel, sigChan, done, stopTimeout)
	if err != nil {
		logger.Warn("game interrupted: " + err.Error())
	}
	if *record {
		if errors.Is(err, errGameAbandoned) {
			logger.Warn("game record skipped")
			return
		}
		if err := repo.SaveRecord(os.Stdout, state, game.Result(state)); err != nil {
			logger.Error(err.Error())
		}
	}
}

// waitGame returns once the game loop has returned. On a signal it cancels the
// game and waits up to timeout for the loop, which may be blocked on stdin.
func waitGame(cancel context.CancelFunc, sigChan <-chan os.Signal, done <-chan error, timeout time.Duration) error {
	errGroup := new(errgroup.Group)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			cancel()
			select {
			case <-done:
				return errors.Errorf("captured signal: %v", s)
			case <-time.After(timeout):
				return errors.WithMessagef(errGameAbandoned, "captured signal: %v", s)
			}
		case err := <-done:
			return err
		}
	})
	return errGroup.Wait()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

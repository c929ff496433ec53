package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiryu-dev/othello/internal/adapters/jsonfile"
	"github.com/kiryu-dev/othello/internal/config"
	"github.com/kiryu-dev/othello/internal/usecase/arena"
	"github.com/kiryu-dev/othello/internal/usecase/engine"
	"github.com/kiryu-dev/othello/internal/usecase/game"
	"github.com/kiryu-dev/othello/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	cfgPath := flag.String("config", "", "path to config")
	recordsPath := flag.String("records", "", "file to write json game records to")
	flag.Parse()
	cfg := config.Default()
	if *cfgPath != "" {
		if cfg, err = config.New(*cfgPath); err != nil {
			logger.Fatal(err.Error())
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	var (
		engine = engine.New(cfg.Engine, logger)
		arena  = arena.New(engine, cfg.Arena, logger)
	)
	logger.Info("starting arena",
		zap.Int("games", cfg.Arena.Games),
		zap.Int("dark depth", cfg.Arena.DarkDepth),
		zap.Int("light depth", cfg.Arena.LightDepth),
	)
	summary, games, err := arena.Run(ctx)
	if err != nil {
		logger.Fatal("arena run: " + err.Error())
	}
	if err := utils.EncodeJson(os.Stdout, summary); err != nil {
		logger.Fatal(err.Error())
	}
	if *recordsPath == "" {
		return
	}
	file, err := os.Create(*recordsPath)
	if err != nil {
		logger.Fatal(err.Error())
	}
	defer func() {
		_ = file.Close()
	}()
	var (
		repo  = jsonfile.New()
		rules = game.New(engine, logger)
	)
	for _, state := range games {
		if err := repo.SaveRecord(file, state, rules.Result(state)); err != nil {
			logger.Error(err.Error())
			return
		}
	}
}

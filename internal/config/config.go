package config

import (
	"os"
	"time"

	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidWorkers  = errors.New("worker count must not be negative")
	ErrInvalidComputer = errors.New("computer must be one of dark, light, both, none")
	ErrInvalidGames    = errors.New("arena game count must be positive")
	ErrInvalidOpening  = errors.New("arena opening plies must not be negative")
)

const (
	defaultDepth = 5
	maxDepth     = 12
)

type HeuristicConfig struct {
	Disc     int `yaml:"disc"`
	Mobility int `yaml:"mobility"`
	Corner   int `yaml:"corner"`
}

type EngineConfig struct {
	Depth     int             `yaml:"depth"`
	Workers   int             `yaml:"workers"`
	TimeLimit time.Duration   `yaml:"time_limit"`
	Heuristic HeuristicConfig `yaml:"heuristic"`
}

type GameConfig struct {
	Computer string `yaml:"computer"`
}

type ArenaConfig struct {
	Games        int   `yaml:"games"`
	Workers      int   `yaml:"workers"`
	DarkDepth    int   `yaml:"dark_depth"`
	LightDepth   int   `yaml:"light_depth"`
	OpeningPlies int   `yaml:"opening_plies"`
	Seed         int64 `yaml:"seed"`
}

type config struct {
	Engine EngineConfig `yaml:"engine"`
	Game   GameConfig   `yaml:"game"`
	Arena  ArenaConfig  `yaml:"arena"`
}

func Default() config {
	return config{
		Engine: EngineConfig{
			Depth:   defaultDepth,
			Workers: 1,
			Heuristic: HeuristicConfig{
				Disc:     10,
				Mobility: 5,
				Corner:   100,
			},
		},
		Game: GameConfig{Computer: "light"},
		Arena: ArenaConfig{
			Games:        10,
			Workers:      4,
			DarkDepth:    3,
			LightDepth:   defaultDepth,
			OpeningPlies: 4,
			Seed:         1,
		},
	}
}

// New reads the yaml file at cfgPath on top of Default, so omitted keys keep
// their default values.
func New(cfgPath string) (config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return config{}, err
	}
	defer func() {
		_ = file.Close()
	}()
	cfg := Default()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return config{}, errors.WithMessage(err, "decode yaml config")
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if _, err := c.Game.ComputerSides(); err != nil {
		return err
	}
	if c.Arena.Games < 1 {
		return ErrInvalidGames
	}
	if c.Arena.Workers < 0 {
		return ErrInvalidWorkers
	}
	if c.Arena.OpeningPlies < 0 {
		return ErrInvalidOpening
	}
	if err := validateDepth(c.Arena.DarkDepth); err != nil {
		return errors.WithMessage(err, "arena dark depth")
	}
	if err := validateDepth(c.Arena.LightDepth); err != nil {
		return errors.WithMessage(err, "arena light depth")
	}
	return nil
}

func (e EngineConfig) Validate() error {
	if err := validateDepth(e.Depth); err != nil {
		return errors.WithMessage(err, "engine depth")
	}
	if e.Workers < 0 {
		return ErrInvalidWorkers
	}
	return nil
}

func validateDepth(depth int) error {
	if depth < 1 || depth > maxDepth {
		return errors.WithMessagef(domain.ErrInvalidDepth, "got %d, allowed 1..%d", depth, maxDepth)
	}
	return nil
}

func (g GameConfig) ComputerSides() ([]domain.Side, error) {
	switch g.Computer {
	case "none", "":
		return nil, nil
	case "both":
		return []domain.Side{domain.Dark, domain.Light}, nil
	}
	side, err := domain.ParseSide(g.Computer)
	if err != nil {
		return nil, errors.WithMessage(ErrInvalidComputer, err.Error())
	}
	return []domain.Side{side}, nil
}

package config

import (
	"errors"
	"fmt"
	"os"

	"hive/game"
	"hive/meta"
	"hive/searcher"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Search struct {
	Depth        int    `yaml:"depth"`
	MemoCapacity int    `yaml:"memo_capacity"`
	MemoMinPly   int    `yaml:"memo_min_ply"`
	Evaluation   string `yaml:"evaluation"`
}

type Experiment struct {
	Games     int     `yaml:"games"`
	Depths    []int   `yaml:"depths"`
	Epsilon   float64 `yaml:"epsilon"`
	OpenPlies int     `yaml:"open_plies"`
	Workers   int     `yaml:"workers"`
	OutputDir string  `yaml:"output_dir"`
}

type Config struct {
	// Pieces per player by letter, e.g. {Q: 1, A: 6}.
	Pieces     map[string]int `yaml:"pieces"`
	MaxTurns   int            `yaml:"max_turns"`
	Seed       uint64         `yaml:"seed"`
	LogLevel   string         `yaml:"log_level"`
	Search     Search         `yaml:"search"`
	Experiment Experiment     `yaml:"experiment"`
}

var evaluations = map[string]game.Evaluate{
	"surround": game.EvaluateSurround,
	"pressure": game.EvaluatePressure,
}

func Default() Config {
	return Config{
		Pieces:   map[string]int{"Q": 1, "A": 6},
		MaxTurns: meta.MAX_TURNS,
		Seed:     1,
		LogLevel: "info",
		Search: Search{
			Depth:        meta.SEARCH_DEPTH,
			MemoCapacity: meta.MEMO_CAPACITY,
			MemoMinPly:   meta.MEMO_MIN_PLY,
			Evaluation:   "surround",
		},
		Experiment: Experiment{
			Games:     meta.NUM_GAMES,
			Depths:    []int{1, 2, 3},
			Epsilon:   0.2,
			OpenPlies: 4,
			Workers:   meta.WORKERS,
			OutputDir: meta.OUTPUT_DIR,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		// A piece set in the file replaces the default one instead of merging.
		cfg.Pieces = nil
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Pieces == nil {
			cfg.Pieces = Default().Pieces
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if _, err := c.Rules(); err != nil {
		errs = append(errs, err)
	}
	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if err := validateDepth(c.Search.Depth); err != nil {
		errs = append(errs, err)
	}
	if c.Search.MemoCapacity <= 0 {
		errs = append(errs, fmt.Errorf("memo_capacity must be positive, got %d", c.Search.MemoCapacity))
	}
	if c.Search.MemoMinPly < 0 {
		errs = append(errs, fmt.Errorf("memo_min_ply must not be negative, got %d", c.Search.MemoMinPly))
	}
	if _, ok := evaluations[c.Search.Evaluation]; !ok {
		errs = append(errs, fmt.Errorf("unknown evaluation %q", c.Search.Evaluation))
	}
	if c.Experiment.Games <= 0 {
		errs = append(errs, fmt.Errorf("experiment games must be positive, got %d", c.Experiment.Games))
	}
	for _, d := range c.Experiment.Depths {
		if err := validateDepth(d); err != nil {
			errs = append(errs, fmt.Errorf("experiment %w", err))
		}
	}
	if c.Experiment.Workers <= 0 {
		errs = append(errs, fmt.Errorf("experiment workers must be positive, got %d", c.Experiment.Workers))
	}
	if c.Experiment.Epsilon < 0 || c.Experiment.Epsilon > 1 {
		errs = append(errs, fmt.Errorf("epsilon must be within [0, 1], got %v", c.Experiment.Epsilon))
	}
	return errors.Join(errs...)
}

func validateDepth(depth int) error {
	if depth < 1 || depth > searcher.MaxDepth {
		return fmt.Errorf("depth must be within [1, %d], got %d", searcher.MaxDepth, depth)
	}
	return nil
}

// Rules builds the piece set from the letter counts.
func (c Config) Rules() (*game.StandardRules, error) {
	pieces := make(map[game.PieceKind]int, len(c.Pieces))
	for letter, n := range c.Pieces {
		if len(letter) != 1 {
			return nil, fmt.Errorf("piece %q: want a single letter", letter)
		}
		kind, ok := game.KindFromLetter(letter[0])
		if !ok {
			return nil, fmt.Errorf("unknown piece %q", letter)
		}
		pieces[kind] += n
	}
	return game.NewRules(pieces)
}

func (c Config) Evaluate() game.Evaluate {
	return evaluations[c.Search.Evaluation]
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// SearchOptions turns the search section into searcher options.
func (c Config) SearchOptions(depth int) []searcher.Option {
	return []searcher.Option{
		searcher.WithDepth(depth),
		searcher.WithMemoCapacity(c.Search.MemoCapacity),
		searcher.WithMemoMinPly(c.Search.MemoMinPly),
		searcher.WithEvaluationFn(c.Evaluate()),
		searcher.WithMetrics(),
	}
}

// Package simulate runs seeded seasons of balanced matches against the
// rating library and reports how fast the beliefs converge on the sampled
// true skills. It is the module's consumer-side harness: it owns the
// roster storage, the environment configuration, and the match loop, the
// way a real caller would.
package simulate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the simulation parameters.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Players is the roster size.
	Players int `koanf:"players"`

	// TeamSize is the number of players per side in each match.
	TeamSize int `koanf:"team_size"`

	// Rounds is the number of matches to play.
	Rounds int `koanf:"rounds"`

	// Seed makes roster generation and outcome sampling reproducible.
	Seed int64 `koanf:"seed"`

	// TopN caps the standings printed at the end.
	TopN int `koanf:"top_n"`

	// Rating environment parameters.
	Mu              float64 `koanf:"mu"`
	Sigma           float64 `koanf:"sigma"`
	Beta            float64 `koanf:"beta"`
	Tau             float64 `koanf:"tau"`
	DrawProbability float64 `koanf:"draw_probability"`
}

// New returns the default simulation configuration: a small lobby on the
// classic TrueSkill scale.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		Players:         8,
		TeamSize:        2,
		Rounds:          100,
		Seed:            42,
		TopN:            10,
		Mu:              25,
		Sigma:           25.0 / 3,
		Beta:            25.0 / 6,
		Tau:             25.0 / 300,
		DrawProbability: 0.1,
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if TRUESKILL_CONFIG is set
//  3. env (prefix TRUESKILL_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("TRUESKILL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: TRUESKILL_PLAYERS, TRUESKILL_TEAM_SIZE, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("TRUESKILL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "trueskill_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TeamSize < 1 {
		return fmt.Errorf("%w: team_size must be at least 1", ErrInvalidConfig)
	}
	if c.Players < 2*c.TeamSize {
		return fmt.Errorf("%w: players must cover two teams of %d", ErrInvalidConfig, c.TeamSize)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive", ErrInvalidConfig)
	}
	if c.TopN < 1 {
		return fmt.Errorf("%w: top_n must be positive", ErrInvalidConfig)
	}
	return nil
}

package simulate

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	trueskill "github.com/okian/trueskill"
	"github.com/okian/trueskill/internal/gauss"
	"github.com/okian/trueskill/pkg/logger"
)

// Season drives rounds of balanced matches over a fixed roster.
type Season struct {
	cfg    *Config
	env    *trueskill.Environment
	roster []*Player
	rng    *rand.Rand
	log    logger.Logger
}

// NewSeason builds the rating environment and a seeded roster.
func NewSeason(cfg *Config) (*Season, error) {
	env, err := trueskill.New(
		trueskill.WithMu(cfg.Mu),
		trueskill.WithSigma(cfg.Sigma),
		trueskill.WithBeta(cfg.Beta),
		trueskill.WithTau(cfg.Tau),
		trueskill.WithDrawProbability(cfg.DrawProbability),
	)
	if err != nil {
		return nil, fmt.Errorf("build environment: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible simulations
	return &Season{
		cfg:    cfg,
		env:    env,
		roster: newRoster(cfg, env, rng),
		rng:    rng,
		log:    logger.Named("simulate"),
	}, nil
}

// Roster exposes the current roster, ordered as generated.
func (s *Season) Roster() []*Player {
	return s.roster
}

// Run plays the configured number of rounds and returns the final report.
// It honors ctx between rounds.
func (s *Season) Run(ctx context.Context) (*Report, error) {
	var qualitySum float64
	for round := 0; round < s.cfg.Rounds; round++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("simulation cancelled at round %d: %w", round, ctx.Err())
		default:
		}

		q, err := s.playRound(ctx, round)
		if err != nil {
			return nil, err
		}
		qualitySum += q
	}
	return s.report(qualitySum / float64(s.cfg.Rounds)), nil
}

// playRound draws a random pool, balances it into two teams, samples the
// outcome from the true skills, and writes the updated beliefs back.
func (s *Season) playRound(ctx context.Context, round int) (float64, error) {
	pool := s.pickPool()
	ratings := make([]trueskill.Rating, len(pool))
	for i, p := range pool {
		ratings[i] = p.Rating
	}

	idx1, idx2, err := s.env.Balance(ratings)
	if err != nil {
		return 0, fmt.Errorf("balance round %d: %w", round, err)
	}

	side1 := make([]*Player, len(idx1))
	team1 := make([]trueskill.Rating, len(idx1))
	for i, idx := range idx1 {
		side1[i] = pool[idx]
		team1[i] = ratings[idx]
	}
	side2 := make([]*Player, len(idx2))
	team2 := make([]trueskill.Rating, len(idx2))
	for i, idx := range idx2 {
		side2[i] = pool[idx]
		team2[i] = ratings[idx]
	}

	quality, err := s.env.Quality(team1, team2)
	if err != nil {
		return 0, fmt.Errorf("quality round %d: %w", round, err)
	}

	score := s.sampleOutcome(side1, side2)
	new1, new2, err := s.env.Update(team1, team2, score)
	if err != nil {
		return 0, fmt.Errorf("update round %d: %w", round, err)
	}

	for i, p := range side1 {
		p.Rating = new1[i]
		p.Matches++
	}
	for i, p := range side2 {
		p.Rating = new2[i]
		p.Matches++
	}

	s.log.Debug(ctx, "round played",
		logger.Int("round", round),
		logger.Float64("quality", quality),
		logger.String("score", score.String()),
	)
	return quality, nil
}

// pickPool selects a random 2*TeamSize subset of the roster.
func (s *Season) pickPool() []*Player {
	perm := s.rng.Perm(len(s.roster))
	pool := make([]*Player, 2*s.cfg.TeamSize)
	for i := range pool {
		pool[i] = s.roster[perm[i]]
	}
	return pool
}

// sampleOutcome rolls each player's match performance around their true
// skill with beta noise, then compares team totals against the same draw
// margin the update uses.
func (s *Season) sampleOutcome(side1, side2 []*Player) trueskill.Score {
	perf := func(side []*Player) float64 {
		var sum float64
		for _, p := range side {
			sum += p.TrueSkill + s.rng.NormFloat64()*s.env.Beta()
		}
		return sum
	}
	diff := perf(side1) - perf(side2)

	if p := s.env.DrawProbability(); p > 0 {
		n := float64(len(side1) + len(side2))
		margin := gauss.Quantile((1+p)/2) * math.Sqrt(n) * s.env.Beta()
		if math.Abs(diff) < margin {
			return trueskill.Draw
		}
	}
	if diff < 0 {
		return trueskill.Loss
	}
	if diff == 0 {
		return trueskill.Draw
	}
	return trueskill.Win
}

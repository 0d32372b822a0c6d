package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/trueskill/internal/simulate"
	"github.com/okian/trueskill/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		// Logger is unavailable, so write directly.
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := simulate.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	log.Info(ctx, "starting season simulation",
		logger.Int("players", cfg.Players),
		logger.Int("team_size", cfg.TeamSize),
		logger.Int("rounds", cfg.Rounds),
		logger.Float64("draw_probability", cfg.DrawProbability),
	)

	season, err := simulate.NewSeason(cfg)
	if err != nil {
		log.Error(ctx, "failed to set up season", logger.Error(err))
		return
	}

	report, err := season.Run(ctx)
	if err != nil {
		log.Error(ctx, "simulation failed", logger.Error(err))
		return
	}

	log.Info(ctx, "season finished",
		logger.Int("rounds", report.Rounds),
		logger.Float64("avg_quality", report.AverageQuality),
		logger.Float64("skill_correlation", report.SkillCorrelation),
	)

	top := report.Standings
	if len(top) > cfg.TopN {
		top = top[:cfg.TopN]
	}
	for _, standing := range top {
		log.Info(ctx, "standing",
			logger.Int("rank", standing.Rank),
			logger.String("player", standing.ID),
			logger.Float64("mean", standing.Mean),
			logger.Float64("sigma", standing.Sigma),
			logger.Float64("conservative", standing.Conservative),
			logger.Float64("true_skill", standing.TrueSkill),
			logger.Int("matches", standing.Matches),
		)
	}
}

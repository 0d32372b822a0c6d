package simulate_test

import (
	"context"
	"math"
	"testing"

	"github.com/okian/trueskill/internal/simulate"
	"github.com/okian/trueskill/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func smallConfig() *simulate.Config {
	cfg := simulate.New(context.Background())
	cfg.Players = 8
	cfg.TeamSize = 2
	cfg.Rounds = 40
	cfg.Seed = 7
	return cfg
}

func TestNewSeason(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Convey("Given a fresh season", t, func() {
		season, err := simulate.NewSeason(smallConfig())
		So(err, ShouldBeNil)

		Convey("Then the roster matches the configured size", func() {
			So(season.Roster(), ShouldHaveLength, 8)
		})

		Convey("Then every player starts from the newcomer prior", func() {
			for _, p := range season.Roster() {
				So(p.Rating.Mean, ShouldEqual, 25.0)
				So(p.Rating.Sigma(), ShouldAlmostEqual, 25.0/3, 1e-12)
				So(p.Matches, ShouldEqual, 0)
			}
		})

		Convey("Then player IDs are unique", func() {
			seen := map[string]bool{}
			for _, p := range season.Roster() {
				So(seen[p.ID], ShouldBeFalse)
				seen[p.ID] = true
			}
		})
	})

	Convey("Given a draw probability outside the legal range", t, func() {
		cfg := smallConfig()
		cfg.DrawProbability = 1.2

		Convey("Then season construction fails", func() {
			_, err := simulate.NewSeason(cfg)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSeasonRun(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Convey("Given a small seeded season", t, func() {
		cfg := smallConfig()
		season, err := simulate.NewSeason(cfg)
		So(err, ShouldBeNil)

		Convey("When running it to completion", func() {
			report, err := season.Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the report covers the whole roster", func() {
				So(report.Rounds, ShouldEqual, cfg.Rounds)
				So(report.Standings, ShouldHaveLength, cfg.Players)
				for i, standing := range report.Standings {
					So(standing.Rank, ShouldEqual, i+1)
				}
			})

			Convey("Then every round fielded two full teams", func() {
				total := 0
				for _, p := range season.Roster() {
					total += p.Matches
				}
				So(total, ShouldEqual, cfg.Rounds*2*cfg.TeamSize)
			})

			Convey("Then match evidence tightened the beliefs overall", func() {
				var sigmaSum float64
				for _, p := range season.Roster() {
					So(math.IsNaN(p.Rating.Mean), ShouldBeFalse)
					So(p.Rating.Variance, ShouldBeGreaterThan, 0)
					sigmaSum += p.Rating.Sigma()
				}
				So(sigmaSum/float64(cfg.Players), ShouldBeLessThan, cfg.Sigma)
			})

			Convey("Then the summary statistics are well formed", func() {
				So(report.AverageQuality, ShouldBeGreaterThan, 0)
				So(report.AverageQuality, ShouldBeLessThanOrEqualTo, 1+1e-12)
				So(math.IsNaN(report.SkillCorrelation), ShouldBeFalse)
				So(report.SkillCorrelation, ShouldBeBetweenOrEqual, -1, 1)
			})

			Convey("Then the standings are ordered by the conservative estimate", func() {
				for i := 1; i < len(report.Standings); i++ {
					So(report.Standings[i-1].Conservative,
						ShouldBeGreaterThanOrEqualTo, report.Standings[i].Conservative)
				}
			})
		})

		Convey("When running the same seed twice", func() {
			again, err := simulate.NewSeason(smallConfig())
			So(err, ShouldBeNil)

			first, err := season.Run(context.Background())
			So(err, ShouldBeNil)
			second, err := again.Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the runs agree exactly", func() {
				So(second.AverageQuality, ShouldEqual, first.AverageQuality)
				So(second.SkillCorrelation, ShouldEqual, first.SkillCorrelation)
				So(second.Standings, ShouldHaveLength, len(first.Standings))
				for i := range first.Standings {
					So(second.Standings[i].Mean, ShouldEqual, first.Standings[i].Mean)
					So(second.Standings[i].Sigma, ShouldEqual, first.Standings[i].Sigma)
				}
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			fresh, err := simulate.NewSeason(smallConfig())
			So(err, ShouldBeNil)
			_, err = fresh.Run(ctx)

			Convey("Then the run reports the cancellation", func() {
				So(err, ShouldWrap, context.Canceled)
			})
		})
	})
}

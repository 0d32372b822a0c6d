package simulate

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// conservativeK is the number of standard deviations subtracted from the
// mean for leaderboard ranking, so uncertain newcomers start near the
// bottom instead of the middle.
const conservativeK = 3

// Standing is one row of the final leaderboard.
type Standing struct {
	Rank         int
	ID           string
	Mean         float64
	Sigma        float64
	Conservative float64
	TrueSkill    float64
	Matches      int
}

// Report summarizes a finished season.
type Report struct {
	Rounds int

	// AverageQuality is the mean pre-match fairness score across rounds;
	// a balancing roster should keep it high.
	AverageQuality float64

	// SkillCorrelation is the Pearson correlation between the estimated
	// means and the hidden true skills at season end.
	SkillCorrelation float64

	Standings []Standing
}

// report ranks the roster by the conservative estimate and measures how
// well the beliefs track the hidden skills.
func (s *Season) report(avgQuality float64) *Report {
	standings := make([]Standing, len(s.roster))
	means := make([]float64, len(s.roster))
	truths := make([]float64, len(s.roster))
	for i, p := range s.roster {
		sigma := p.Rating.Sigma()
		standings[i] = Standing{
			ID:           p.ID,
			Mean:         p.Rating.Mean,
			Sigma:        sigma,
			Conservative: p.Rating.Mean - conservativeK*sigma,
			TrueSkill:    p.TrueSkill,
			Matches:      p.Matches,
		}
		means[i] = p.Rating.Mean
		truths[i] = p.TrueSkill
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Conservative > standings[j].Conservative
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return &Report{
		Rounds:           s.cfg.Rounds,
		AverageQuality:   avgQuality,
		SkillCorrelation: stat.Correlation(means, truths, nil),
		Standings:        standings,
	}
}

package trueskill

import (
	"math"

	"github.com/okian/trueskill/internal/gauss"
)

// minVariance is the floor applied after the contraction step. Floating
// point undershoot must never leak a negative variance to callers.
const minVariance = 1e-12

// update applies the truncated-Gaussian correction for the observed outcome
// and returns fresh ratings for both teams.
func update(env *Environment, team1, team2 []Rating, score Score) ([]Rating, []Rating, error) {
	if score == Loss {
		// A loss for team1 is a win for team2. One swapped call covers
		// it, so only Win and Draw need formulas below.
		new2, new1, err := update(env, team2, team1, Win)
		if err != nil {
			return nil, nil, err
		}
		return new1, new2, nil
	}

	// Skill drift between matches widens every belief before the match
	// evidence narrows it again.
	post1 := addDynamics(team1, env.tau)
	post2 := addDynamics(team2, env.tau)

	r1 := combine(post1)
	r2 := combine(post2)
	n := float64(len(post1) + len(post2))
	c2 := n*env.beta*env.beta + r1.Variance + r2.Variance
	if c2 == 0 {
		return nil, nil, ErrIllDefinedMatch
	}
	c := math.Sqrt(c2)

	t := (r1.Mean - r2.Mean) / c
	var epsilon float64
	if env.drawProbability > 0 {
		epsilon = drawMargin(env.drawProbability, n, env.beta) / c
	}

	var v, w float64
	if score == Draw {
		v, w = vwDraw(t, epsilon)
	} else {
		v, w = vwWin(t, epsilon)
	}

	apply := func(team []Rating, mult float64) []Rating {
		out := make([]Rating, len(team))
		for i, r := range team {
			out[i] = Rating{
				Mean:     r.Mean + mult*r.Variance/c*v,
				Variance: math.Max(r.Variance*(1-r.Variance/c2*w), minVariance),
			}
		}
		return out
	}
	return apply(post1, 1), apply(post2, -1), nil
}

// addDynamics widens each rating by the process-noise term tau^2.
func addDynamics(team []Rating, tau float64) []Rating {
	out := make([]Rating, len(team))
	for i, r := range team {
		out[i] = Rating{Mean: r.Mean, Variance: r.Variance + tau*tau}
	}
	return out
}

// vwWin returns the moment-matching corrections for a win by more than the
// margin. When an extreme upset drives cdf toward zero, v grows huge; that
// is the correct large correction, not an error.
func vwWin(t, epsilon float64) (v, w float64) {
	x := t - epsilon
	v = gauss.PDF(x) / gauss.CDF(x)
	w = v * (v + x)
	return v, w
}

// vwDraw returns the corrections for an outcome inside the draw margin.
// With a margin of zero the truncation collapses to a point and the
// formulas degenerate to their limit v = -t, w = 1.
func vwDraw(t, epsilon float64) (v, w float64) {
	if epsilon == 0 {
		return -t, 1
	}
	x1 := -epsilon - t
	x2 := epsilon - t
	denom := gauss.CDF(x2) - gauss.CDF(x1)
	v = (gauss.PDF(x1) - gauss.PDF(x2)) / denom
	w = v*v + (x2*gauss.PDF(x2)-x1*gauss.PDF(x1))/denom
	return v, w
}

// drawMargin is the performance gap under which a match counts as a draw.
func drawMargin(drawProbability, n, beta float64) float64 {
	return gauss.Quantile((1+drawProbability)/2) * math.Sqrt(n) * beta
}

package trueskill

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// quality is the closed-form probability-of-draw-shaped fairness score: the
// product of a variance ratio and a Gaussian in the mean gap. Uncertain
// teams push the denominator up and the score down.
func quality(env *Environment, team1, team2 []Rating) (float64, error) {
	r1 := combine(team1)
	r2 := combine(team2)
	n := float64(len(team1) + len(team2))
	nb2 := n * env.beta * env.beta
	c2 := nb2 + r1.Variance + r2.Variance
	if c2 == 0 {
		return 0, ErrIllDefinedMatch
	}
	dmu := r1.Mean - r2.Mean
	return math.Sqrt(nb2/c2) * math.Exp(-dmu*dmu/(2*c2)), nil
}

// balance enumerates every way to hand floor(n/2) of the players to the
// second team and keeps the split with the best quality. Player 0 is pinned
// to the first team: quality does not care which side is called team1, so
// the mirrored half of the search space is redundant. Ties keep the first
// split seen, which makes repeated calls deterministic.
//
// The search is exhaustive on purpose, O(C(n-1, n/2)); it is meant for
// small-roster matchmaking, not large lobbies.
func balance(env *Environment, players []Rating) ([]int, []int, error) {
	n := len(players)
	switch n {
	case 0:
		return []int{}, []int{}, nil
	case 1:
		return []int{0}, []int{}, nil
	}

	best := math.Inf(-1)
	var best1, best2 []int
	gen := combin.NewCombinationGenerator(n-1, n/2)
	comb := make([]int, n/2)
	inTeam2 := make([]bool, n)
	for gen.Next() {
		gen.Combination(comb)
		for i := range inTeam2 {
			inTeam2[i] = false
		}
		for _, c := range comb {
			// Generator indices run over players 1..n-1.
			inTeam2[c+1] = true
		}

		idx1 := make([]int, 0, n-n/2)
		idx2 := make([]int, 0, n/2)
		t1 := make([]Rating, 0, n-n/2)
		t2 := make([]Rating, 0, n/2)
		for i, r := range players {
			if inTeam2[i] {
				idx2 = append(idx2, i)
				t2 = append(t2, r)
			} else {
				idx1 = append(idx1, i)
				t1 = append(t1, r)
			}
		}

		q, err := quality(env, t1, t2)
		if err != nil {
			return nil, nil, err
		}
		if q > best {
			best, best1, best2 = q, idx1, idx2
		}
	}
	return best1, best2, nil
}

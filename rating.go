package trueskill

import "math"

// Rating is a Gaussian belief about a player's skill. Combining the ratings
// of a team's members yields the same type describing the team's joint
// performance.
//
// The persisted form uses the mean/variance field names, so stored records
// survive round trips unchanged.
type Rating struct {
	// Mean is the current skill estimate.
	Mean float64 `json:"mean"`
	// Variance is the squared uncertainty of the estimate.
	Variance float64 `json:"variance"`
}

// NewRating builds a rating from a mean and a variance.
func NewRating(mean, variance float64) Rating {
	return Rating{Mean: mean, Variance: variance}
}

// Sigma returns the standard deviation of the belief.
func (r Rating) Sigma() float64 {
	return math.Sqrt(r.Variance)
}

// Add combines two independent Gaussian performances: means and variances
// sum. Folding Add over a team gives the team's aggregate rating.
func (r Rating) Add(other Rating) Rating {
	return Rating{
		Mean:     r.Mean + other.Mean,
		Variance: r.Variance + other.Variance,
	}
}

// combine collapses a team into one virtual rating. An empty team
// contributes zero mean and zero variance.
func combine(team []Rating) Rating {
	var sum Rating
	for _, r := range team {
		sum = sum.Add(r)
	}
	return sum
}

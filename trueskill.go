// Package trueskill implements the TrueSkill Bayesian skill-rating model
// for matches between exactly two teams: updating per-player ratings from a
// win/draw/loss outcome, scoring how fair a hypothetical matchup would be,
// and splitting a roster into two balanced teams.
//
// Every operation is a pure function over immutable inputs. Callers own the
// storage and scheduling of ratings between matches; one Environment may
// back any number of concurrent computations without synchronization.
package trueskill

import (
	"encoding/json"
	"fmt"
)

// Default environment parameters, on the classic TrueSkill scale: a mean of
// 25 with a third of it as the newcomer uncertainty.
const (
	DefaultMu    = 25.0
	DefaultSigma = DefaultMu / 3
	DefaultBeta  = DefaultSigma / 2
	DefaultTau   = DefaultSigma / 100
)

// Option applies a configuration option to the Environment.
type Option func(*Environment)

// WithMu sets the initial skill estimate for a newcomer.
func WithMu(mu float64) Option {
	return func(e *Environment) {
		e.mu = mu
	}
}

// WithSigma sets the initial uncertainty for a newcomer.
func WithSigma(sigma float64) Option {
	return func(e *Environment) {
		e.sigma = sigma
	}
}

// WithBeta sets the performance variance parameter: the randomness of a
// single match performance around true skill.
func WithBeta(beta float64) Option {
	return func(e *Environment) {
		e.beta = beta
	}
}

// WithTau sets the dynamics factor: the per-match uncertainty growth that
// models skill drift between matches.
func WithTau(tau float64) Option {
	return func(e *Environment) {
		e.tau = tau
	}
}

// WithDrawProbability sets the chance of a draw between evenly matched
// teams. Zero disables the draw margin entirely.
func WithDrawProbability(p float64) Option {
	return func(e *Environment) {
		e.drawProbability = p
	}
}

// Environment is the immutable parameter bundle behind every rating
// computation. Build one with New and share it freely.
type Environment struct {
	mu              float64
	sigma           float64
	beta            float64
	tau             float64
	drawProbability float64
}

// New builds an Environment from defaults and options. The draw probability
// must lie in [0, 1); anything else fails with ErrDrawProbability before it
// can reach the quantile function inside Update.
func New(opts ...Option) (*Environment, error) {
	e := &Environment{
		mu:    DefaultMu,
		sigma: DefaultSigma,
		beta:  DefaultBeta,
		tau:   DefaultTau,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.drawProbability < 0 || e.drawProbability >= 1 {
		return nil, fmt.Errorf("%w: %v", ErrDrawProbability, e.drawProbability)
	}
	return e, nil
}

// Mu returns the initial skill estimate.
func (e *Environment) Mu() float64 { return e.mu }

// Sigma returns the initial uncertainty.
func (e *Environment) Sigma() float64 { return e.sigma }

// Beta returns the performance variance parameter.
func (e *Environment) Beta() float64 { return e.beta }

// Tau returns the dynamics factor.
func (e *Environment) Tau() float64 { return e.tau }

// DrawProbability returns the configured draw probability.
func (e *Environment) DrawProbability() float64 { return e.drawProbability }

// NewRating returns the prior belief for an unrated newcomer.
func (e *Environment) NewRating() Rating {
	return Rating{Mean: e.mu, Variance: e.sigma * e.sigma}
}

// Quality scores the fairness of a hypothetical match between the two teams
// in [0, 1]; higher means closer. Both teams are read-only.
func (e *Environment) Quality(team1, team2 []Rating) (float64, error) {
	return quality(e, team1, team2)
}

// Update returns new ratings for both teams given the outcome, preserving
// element count and order. The inputs are left untouched.
func (e *Environment) Update(team1, team2 []Rating, score Score) ([]Rating, []Rating, error) {
	return update(e, team1, team2, score)
}

// Balance splits players into the two most evenly matched teams it can
// find, returning index sets into the input slice.
func (e *Environment) Balance(players []Rating) ([]int, []int, error) {
	return balance(e, players)
}

// environmentJSON is the persisted form of an Environment. The field names
// are a compatibility contract with previously stored records.
type environmentJSON struct {
	Mu              float64 `json:"mu"`
	Sigma           float64 `json:"sigma"`
	Beta            float64 `json:"beta"`
	Tau             float64 `json:"tau"`
	DrawProbability float64 `json:"draw_probability"`
}

// MarshalJSON implements json.Marshaler.
func (e Environment) MarshalJSON() ([]byte, error) {
	return json.Marshal(environmentJSON{
		Mu:              e.mu,
		Sigma:           e.sigma,
		Beta:            e.beta,
		Tau:             e.tau,
		DrawProbability: e.drawProbability,
	})
}

// UnmarshalJSON implements json.Unmarshaler, applying the same validation
// as New.
func (e *Environment) UnmarshalJSON(data []byte) error {
	var aux environmentJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("decode environment: %w", err)
	}
	if aux.DrawProbability < 0 || aux.DrawProbability >= 1 {
		return fmt.Errorf("%w: %v", ErrDrawProbability, aux.DrawProbability)
	}
	*e = Environment{
		mu:              aux.Mu,
		sigma:           aux.Sigma,
		beta:            aux.Beta,
		tau:             aux.Tau,
		drawProbability: aux.DrawProbability,
	}
	return nil
}

package trueskill

import "errors"

// Sentinel kinds for rating computations. These allow errors.Is/As from callers.
var (
	// ErrDrawProbability reports a draw probability outside [0, 1).
	ErrDrawProbability = errors.New("draw probability out of range [0, 1)")

	// ErrIllDefinedMatch reports a matchup with zero total performance
	// variance. The update and quality formulas divide by it, so the
	// configuration is rejected instead of propagating NaN.
	ErrIllDefinedMatch = errors.New("ill-defined match: zero total variance")
)

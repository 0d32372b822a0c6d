package trueskill

// Score is a match outcome from team1's point of view. Exactly one of the
// three values describes any finished match.
type Score int

const (
	// Win means team1 beat team2.
	Win Score = iota
	// Loss means team2 beat team1.
	Loss
	// Draw means the match ended within the draw margin.
	Draw
)

// String returns the lowercase outcome name.
func (s Score) String() string {
	switch s {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

package simulate

import (
	"math/rand"

	"github.com/google/uuid"

	trueskill "github.com/okian/trueskill"
)

// Player couples a fixed true skill, used to sample match performances,
// with the evolving rating belief the simulation is trying to converge.
type Player struct {
	ID        string
	TrueSkill float64
	Rating    trueskill.Rating
	Matches   int
}

// newRoster samples true skills around the environment prior and hands
// every player the newcomer rating.
func newRoster(cfg *Config, env *trueskill.Environment, rng *rand.Rand) []*Player {
	players := make([]*Player, cfg.Players)
	for i := range players {
		players[i] = &Player{
			ID:        uuid.New().String(),
			TrueSkill: env.Mu() + rng.NormFloat64()*env.Sigma(),
			Rating:    env.NewRating(),
		}
	}
	return players
}

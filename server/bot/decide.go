// Package bot holds the automated opponents: the difficulty-tuned table
// heuristic, the background scheduler that plays their turns, and the
// stateless pre-flop advisor behind the legacy decide endpoint.
package bot

import (
	"math/rand"

	"pokertabled/server/engine"
)

// Decision is one bot move. RaiseTo is the absolute raise target and only
// meaningful for ActionRaise.
type Decision struct {
	Action  engine.Action
	RaiseTo int
}

// Decide picks a move from the amount owed and the difficulty setting.
// Easy never raises, Medium opens occasionally, Hard opens often, defends
// cheap prices, and sometimes looks up big bets.
func Decide(rng *rand.Rand, diff engine.Difficulty, owed, chips, currentBet, bigBlind int) Decision {
	switch {
	case owed <= 0:
		switch diff {
		case engine.Hard:
			if rng.Float64() < 0.60 {
				mult := 2
				if rng.Intn(2) == 1 {
					mult = 3
				}
				return Decision{Action: engine.ActionRaise, RaiseTo: bigBlind * mult}
			}
		case engine.Medium:
			if rng.Float64() < 0.30 {
				return Decision{Action: engine.ActionRaise, RaiseTo: bigBlind * 2}
			}
		}
		return Decision{Action: engine.ActionCheck}

	case owed >= chips:
		// Facing a bet for the whole stack: all-in for less, or fold broke.
		if chips > 0 {
			return Decision{Action: engine.ActionCall}
		}
		return Decision{Action: engine.ActionFold}

	case owed <= bigBlind:
		if diff == engine.Hard && rng.Float64() < 0.25 {
			return Decision{Action: engine.ActionRaise, RaiseTo: currentBet + 2*bigBlind}
		}
		return Decision{Action: engine.ActionCall}

	case owed > 4*bigBlind:
		if diff == engine.Hard && rng.Float64() < 0.30 {
			return Decision{Action: engine.ActionCall}
		}
		return Decision{Action: engine.ActionFold}

	default:
		return Decision{Action: engine.ActionCall}
	}
}

// Package judge estimates hand strength with Monte-Carlo rollouts over the
// paulhankin evaluator. It backs the stateless advice endpoint; the table
// engine's showdown uses its own category-only evaluator instead.
package judge

import (
	"math/rand"

	poker "github.com/paulhankin/poker"

	"pokertabled/server/engine"
)

// toPH converts an engine card to the evaluator library's representation.
// Engine ranks run 2..14 (Ace high); the library wants Ace as 1.
func toPH(c engine.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case engine.Clubs:
		s = poker.Club
	case engine.Diamonds:
		s = poker.Diamond
	case engine.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == engine.Ace {
		r = poker.Rank(1)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

// Equity estimates the probability that the hole cards beat the given number
// of random opponents once the board runs out, sampling iters rollouts.
// Ties count as half a win. Returns 0 for malformed input.
func Equity(hole, board []engine.Card, opponents, iters int, rng *rand.Rand) float64 {
	if len(hole) != 2 || len(board) > 5 || opponents < 1 || iters < 1 {
		return 0
	}

	used := make(map[engine.Card]bool, len(hole)+len(board))
	for _, c := range hole {
		used[c] = true
	}
	for _, c := range board {
		used[c] = true
	}
	remaining := make([]engine.Card, 0, 52)
	for _, c := range engine.FullDeck() {
		if !used[c] {
			remaining = append(remaining, c)
		}
	}

	need := 2*opponents + (5 - len(board))
	if need > len(remaining) {
		return 0
	}

	var hero [7]poker.Card
	hero[0], hero[1] = toPH(hole[0]), toPH(hole[1])
	for i, c := range board {
		hero[2+i] = toPH(c)
	}

	wins := 0.0
	for it := 0; it < iters; it++ {
		// Partial Fisher-Yates: only the cards this rollout consumes.
		for i := 0; i < need; i++ {
			j := i + rng.Intn(len(remaining)-i)
			remaining[i], remaining[j] = remaining[j], remaining[i]
		}
		draw := remaining[:need]

		runout := draw[2*opponents:]
		for i, c := range runout {
			hero[2+len(board)+i] = toPH(c)
		}
		heroScore := poker.Eval7(&hero)

		bestOpp := int16(-1 << 15)
		for o := 0; o < opponents; o++ {
			var opp [7]poker.Card
			opp[0], opp[1] = toPH(draw[2*o]), toPH(draw[2*o+1])
			for i, c := range board {
				opp[2+i] = toPH(c)
			}
			for i, c := range runout {
				opp[2+len(board)+i] = toPH(c)
			}
			if s := poker.Eval7(&opp); s > bestOpp {
				bestOpp = s
			}
		}

		switch {
		case heroScore > bestOpp:
			wins++
		case heroScore == bestOpp:
			wins += 0.5
		}
	}
	return wins / float64(iters)
}

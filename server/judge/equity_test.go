package judge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"pokertabled/server/engine"
)

func c(r engine.Rank, s engine.Suit) engine.Card { return engine.Card{Suit: s, Rank: r} }

func TestEquityAcesBeatOneRandomHand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	eq := Equity(
		[]engine.Card{c(engine.Ace, engine.Spades), c(engine.Ace, engine.Hearts)},
		nil, 1, 2000, rng,
	)
	// Pocket aces run about 85% against one random hand.
	assert.Greater(t, eq, 0.75)
	assert.LessOrEqual(t, eq, 1.0)
}

func TestEquitySevenDeuceIsAnUnderdog(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	eq := Equity(
		[]engine.Card{c(engine.Seven, engine.Clubs), c(engine.Two, engine.Hearts)},
		nil, 1, 2000, rng,
	)
	assert.Less(t, eq, 0.45)
}

func TestEquityLockedRiverIsCertain(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	eq := Equity(
		[]engine.Card{c(engine.Ace, engine.Spades), c(engine.King, engine.Spades)},
		[]engine.Card{
			c(engine.Queen, engine.Spades), c(engine.Jack, engine.Spades),
			c(engine.Ten, engine.Spades), c(engine.Two, engine.Hearts), c(engine.Three, engine.Diamonds),
		},
		1, 200, rng,
	)
	assert.Equal(t, 1.0, eq, "a royal flush cannot lose or chop")
}

func TestEquityMoreOpponentsShrinksEquity(t *testing.T) {
	hole := []engine.Card{c(engine.Ace, engine.Spades), c(engine.Ace, engine.Hearts)}
	one := Equity(hole, nil, 1, 2000, rand.New(rand.NewSource(7)))
	four := Equity(hole, nil, 4, 2000, rand.New(rand.NewSource(7)))
	assert.Greater(t, one, four)
}

func TestEquityMalformedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	assert.Zero(t, Equity(nil, nil, 1, 100, rng))
	assert.Zero(t, Equity([]engine.Card{c(engine.Ace, engine.Spades)}, nil, 1, 100, rng))
	assert.Zero(t, Equity(
		[]engine.Card{c(engine.Ace, engine.Spades), c(engine.Ace, engine.Hearts)},
		nil, 0, 100, rng,
	))
	assert.Zero(t, Equity(
		[]engine.Card{c(engine.Ace, engine.Spades), c(engine.Ace, engine.Hearts)},
		nil, 1, 0, rng,
	))
	// 25 opponents cannot be dealt from one deck.
	assert.Zero(t, Equity(
		[]engine.Card{c(engine.Ace, engine.Spades), c(engine.Ace, engine.Hearts)},
		nil, 25, 100, rng,
	))
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(r Rank, s Suit) Card { return Card{Suit: s, Rank: r} }

func TestEvaluateStraightFlush(t *testing.T) {
	ev := EvaluateBestHand([]Card{
		card(Ace, Spades), card(King, Spades), card(Queen, Spades),
		card(Jack, Spades), card(Ten, Spades),
		card(Two, Hearts), card(Three, Diamonds),
	})
	assert.Equal(t, StraightFlush, ev.Rank)
	assert.ElementsMatch(t, []Card{
		card(Ten, Spades), card(Jack, Spades), card(Queen, Spades),
		card(King, Spades), card(Ace, Spades),
	}, ev.Highlighted)
}

func TestEvaluateFourOfAKind(t *testing.T) {
	ev := EvaluateBestHand([]Card{
		card(Two, Hearts), card(Two, Diamonds), card(Two, Clubs), card(Two, Spades),
		card(Five, Hearts), card(Six, Diamonds), card(Seven, Clubs),
	})
	assert.Equal(t, FourOfAKind, ev.Rank)
	require.Len(t, ev.Highlighted, 4)
	for _, c := range ev.Highlighted {
		assert.Equal(t, Two, c.Rank)
	}
}

func TestEvaluateFullHouse(t *testing.T) {
	ev := EvaluateBestHand([]Card{
		card(Four, Hearts), card(Four, Diamonds),
		card(Nine, Clubs), card(Nine, Spades), card(Nine, Hearts),
		card(King, Diamonds), card(Two, Clubs),
	})
	assert.Equal(t, FullHouse, ev.Rank)
	assert.Len(t, ev.Highlighted, 5)
}

func TestEvaluateFullHousePicksHighestPair(t *testing.T) {
	ev := EvaluateBestHand([]Card{
		card(Nine, Hearts), card(Nine, Diamonds), card(Nine, Clubs),
		card(Four, Hearts), card(Four, Diamonds),
		card(King, Spades), card(King, Hearts),
	})
	require.Equal(t, FullHouse, ev.Rank)
	pairRanks := 0
	for _, c := range ev.Highlighted {
		if c.Rank == King {
			pairRanks++
		}
	}
	assert.Equal(t, 2, pairRanks, "full house should use the kings, not the fours")
}

func TestEvaluateTwoPairPicksHighestPairs(t *testing.T) {
	ev := EvaluateBestHand([]Card{
		card(Ace, Hearts), card(Ace, Diamonds),
		card(King, Hearts), card(King, Diamonds),
		card(Three, Clubs), card(Three, Spades),
		card(Nine, Hearts),
	})
	require.Equal(t, TwoPair, ev.Rank)
	for _, c := range ev.Highlighted {
		assert.NotEqual(t, Three, c.Rank, "threes should be excluded from the two pair")
	}
}

func TestEvaluateHighCard(t *testing.T) {
	ev := EvaluateBestHand([]Card{
		card(Two, Hearts), card(Three, Diamonds), card(Four, Clubs),
		card(Five, Spades), card(Seven, Hearts), card(Nine, Diamonds),
		card(Jack, Clubs),
	})
	assert.Equal(t, HighCard, ev.Rank)
	require.Len(t, ev.Highlighted, 1)
	assert.Equal(t, card(Jack, Clubs), ev.Highlighted[0])
}

func TestEvaluateWheelIsNotAStraight(t *testing.T) {
	// Aces are high only; A-2-3-4-5 does not count.
	ev := EvaluateBestHand([]Card{
		card(Ace, Spades), card(Two, Hearts), card(Three, Diamonds),
		card(Four, Clubs), card(Five, Spades), card(Nine, Hearts),
		card(Jack, Diamonds),
	})
	assert.Equal(t, HighCard, ev.Rank)
	assert.Equal(t, Ace, ev.Highlighted[0].Rank)
}

func TestEvaluateStraightMixedSuitsIsNotStraightFlush(t *testing.T) {
	ev := EvaluateBestHand([]Card{
		card(Six, Hearts), card(Seven, Diamonds), card(Eight, Clubs),
		card(Nine, Spades), card(Ten, Hearts), card(Two, Hearts),
		card(King, Diamonds),
	})
	assert.Equal(t, Straight, ev.Rank)
	assert.Len(t, ev.Highlighted, 5)
}

func TestEvaluateFlush(t *testing.T) {
	ev := EvaluateBestHand([]Card{
		card(Two, Hearts), card(Five, Hearts), card(Eight, Hearts),
		card(Jack, Hearts), card(King, Hearts),
		card(Three, Clubs), card(Nine, Spades),
	})
	assert.Equal(t, Flush, ev.Rank)
	for _, c := range ev.Highlighted {
		assert.Equal(t, Hearts, c.Suit)
	}
}

func TestHighCardSuitTieBreak(t *testing.T) {
	// Same top rank in two suits: spades outranks hearts.
	ev := EvaluateBestHand([]Card{
		card(Queen, Hearts), card(Queen, Spades), card(Two, Hearts),
		card(Four, Diamonds), card(Six, Clubs), card(Eight, Spades),
		card(Ten, Hearts),
	})
	// A pair of queens, not a high-card hand; verify the helper directly.
	require.Equal(t, Pair, ev.Rank)
	top := highestCard([]Card{card(Queen, Hearts), card(Queen, Spades)})
	assert.Equal(t, Spades, top.Suit)
}

package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckIsCompleteAndUnique(t *testing.T) {
	deck := NewDeck(0)
	require.Len(t, deck, 52)

	seen := make(map[Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
		assert.GreaterOrEqual(t, int(c.Rank), 2)
		assert.LessOrEqual(t, int(c.Rank), 14)
	}
}

func TestNewDeckSeedIsReproducible(t *testing.T) {
	a := NewDeck(42)
	b := NewDeck(42)
	assert.Equal(t, a, b)
}

func TestRankWireFormat(t *testing.T) {
	b, err := json.Marshal(Card{Suit: Spades, Rank: Ace})
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":"spades","rank":"A"}`, string(b))

	var c Card
	require.NoError(t, json.Unmarshal([]byte(`{"suit":"hearts","rank":"10"}`), &c))
	assert.Equal(t, Card{Suit: Hearts, Rank: Ten}, c)

	assert.Error(t, json.Unmarshal([]byte(`{"suit":"hearts","rank":"1"}`), &c))
}

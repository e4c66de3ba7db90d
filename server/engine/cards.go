package engine

import (
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"math/rand"
)

type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

var suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// order breaks high-card ties: spades > hearts > diamonds > clubs.
func (s Suit) order() int {
	switch s {
	case Spades:
		return 4
	case Hearts:
		return 3
	case Diamonds:
		return 2
	default:
		return 1
	}
}

func (s Suit) symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "♠"
	}
}

// Rank is the numeric card value, 2..14 with Ace always high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Ranks travel as strings on the wire ("2".."10", "J", "Q", "K", "A").
func (r Rank) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rank) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "J":
		*r = Jack
	case "Q":
		*r = Queen
	case "K":
		*r = King
	case "A":
		*r = Ace
	default:
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 2 || n > 10 {
			return fmt.Errorf("bad rank %q", s)
		}
		*r = Rank(n)
	}
	return nil
}

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.symbol()
}

// NewSeed draws a seed for math/rand from the system CSPRNG.
func NewSeed() int64 {
	max := big.NewInt(int64(^uint64(0) >> 1))
	n, err := crand.Int(crand.Reader, max)
	if err != nil {
		panic("cannot seed shuffle rng from crypto/rand")
	}
	return n.Int64()
}

// FullDeck enumerates all 52 cards in a fixed order.
func FullDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range suits {
		for rk := Two; rk <= Ace; rk++ {
			deck = append(deck, Card{Suit: s, Rank: rk})
		}
	}
	return deck
}

// NewDeck returns a shuffled 52-card deck. Seed 0 means "seed from
// crypto/rand"; a fixed seed gives a reproducible order for tests.
func NewDeck(seed int64) []Card {
	if seed == 0 {
		seed = NewSeed()
	}
	r := rand.New(rand.NewSource(seed))
	deck := FullDeck()
	for i := len(deck) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

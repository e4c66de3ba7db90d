package engine

import (
	"encoding/json"
	"sort"
)

// HandRank orders the standard hold'em categories. The numeric value is the
// showdown strength: hands compare by category only, never by kickers.
type HandRank int

const (
	HighCard HandRank = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush // reserved top slot, never produced by the evaluator
)

func (h HandRank) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	}
	return "Unknown"
}

func (h HandRank) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.wireName())
}

func (h HandRank) wireName() string {
	switch h {
	case HighCard:
		return "HighCard"
	case TwoPair:
		return "TwoPair"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	case RoyalFlush:
		return "RoyalFlush"
	default:
		return h.String()
	}
}

// HandEvaluation is the showdown result for one seat: the best category its
// seven cards reach plus the cards the UI should highlight.
type HandEvaluation struct {
	Rank        HandRank `json:"rank"`
	Cards       []Card   `json:"cards"`
	Highlighted []Card   `json:"highlighted_cards"`
	Label       string   `json:"combination_type"`
}

// EvaluateBestHand reports the best five-card category reachable from seven
// cards (two hole plus the full board). Callers guarantee exactly seven valid
// cards. Aces are high only: A-2-3-4-5 is not detected as a straight.
func EvaluateBestHand(cards []Card) HandEvaluation {
	byRank := make(map[Rank][]Card)
	bySuit := make(map[Suit][]Card)
	for _, c := range cards {
		byRank[c.Rank] = append(byRank[c.Rank], c)
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	var flush []Card
	for _, group := range bySuit {
		if len(group) >= 5 {
			flush = group
		}
	}
	straight := findStraight(cards)

	if flush != nil && straight != nil && sameSuit(straight) {
		return evaluation(StraightFlush, straight)
	}

	if four := groupOfSize(byRank, 4); four != nil {
		return evaluation(FourOfAKind, four)
	}

	trips := groupOfSize(byRank, 3)
	pair := groupOfSize(byRank, 2)
	if trips != nil && pair != nil {
		return evaluation(FullHouse, append(append([]Card{}, trips...), pair...))
	}

	if flush != nil {
		return evaluation(Flush, flush)
	}
	if straight != nil {
		return evaluation(Straight, straight)
	}
	if trips != nil {
		return evaluation(ThreeOfAKind, trips)
	}

	pairs := groupsOfSize(byRank, 2)
	if len(pairs) >= 2 {
		return evaluation(TwoPair, append(append([]Card{}, pairs[0]...), pairs[1]...))
	}
	if len(pairs) == 1 {
		return evaluation(Pair, pairs[0])
	}

	top := highestCard(cards)
	return evaluation(HighCard, []Card{top})
}

func evaluation(rank HandRank, cards []Card) HandEvaluation {
	return HandEvaluation{
		Rank:        rank,
		Cards:       cards,
		Highlighted: cards,
		Label:       rank.String(),
	}
}

// groupOfSize returns the highest-ranked group with exactly n members.
// Picking the highest keeps full-house and trips selection deterministic
// where map iteration order would not be.
func groupOfSize(byRank map[Rank][]Card, n int) []Card {
	var best []Card
	var bestRank Rank
	for r, group := range byRank {
		if len(group) == n && (best == nil || r > bestRank) {
			best, bestRank = group, r
		}
	}
	return best
}

// groupsOfSize returns all groups with exactly n members, highest rank first.
func groupsOfSize(byRank map[Rank][]Card, n int) [][]Card {
	var out [][]Card
	for _, group := range byRank {
		if len(group) == n {
			out = append(out, group)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0].Rank > out[j][0].Rank })
	return out
}

// findStraight scans the distinct rank values for a run of five consecutive
// integers and returns one card per rank of the lowest such run. Aces count
// as 14 only, so the wheel is deliberately not found here.
func findStraight(cards []Card) []Card {
	seen := make(map[Rank]bool)
	var ranks []int
	for _, c := range cards {
		if !seen[c.Rank] {
			seen[c.Rank] = true
			ranks = append(ranks, int(c.Rank))
		}
	}
	sort.Ints(ranks)

	for i := 0; i+5 <= len(ranks); i++ {
		run := true
		for j := 1; j < 5; j++ {
			if ranks[i+j] != ranks[i]+j {
				run = false
				break
			}
		}
		if !run {
			continue
		}
		out := make([]Card, 0, 5)
		for j := 0; j < 5; j++ {
			want := Rank(ranks[i] + j)
			for _, c := range cards {
				if c.Rank == want {
					out = append(out, c)
					break
				}
			}
		}
		if len(out) == 5 {
			return out
		}
	}
	return nil
}

func sameSuit(cards []Card) bool {
	if len(cards) < 5 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// highestCard picks by rank, ties broken by suit order.
func highestCard(cards []Card) Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank > best.Rank || (c.Rank == best.Rank && c.Suit.order() > best.Suit.order()) {
			best = c
		}
	}
	return best
}

// describeCards renders a card list for log lines.
func describeCards(cards []Card) string {
	s := ""
	for i, c := range cards {
		if i > 0 {
			s += ", "
		}
		s += c.String()
	}
	return s
}

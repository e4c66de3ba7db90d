package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SoloStage extends the table stages with the two terminal states the
// practice game needs; it has no turn order, so no DealerDraw either.
type SoloStage string

const (
	SoloDeal     SoloStage = "Deal"
	SoloPreFlop  SoloStage = "PreFlop"
	SoloFlop     SoloStage = "Flop"
	SoloTurn     SoloStage = "Turn"
	SoloRiver    SoloStage = "River"
	SoloShowdown SoloStage = "Showdown"
	SoloFolded   SoloStage = "Folded"
)

// SoloAction is the reduced action set of the practice game.
type SoloAction string

const (
	SoloFold  SoloAction = "Fold"
	SoloCall  SoloAction = "Call"
	SoloRaise SoloAction = "Raise"
)

var ErrSoloAction = errors.New("action not available at this stage")

// Game is the simplified two-party practice variant: one hero hand against
// the house, auto-played to showdown on the first call or raise. It shares
// the card model, dealing primitives and evaluator with the table engine
// rather than carrying a second copy of them.
type Game struct {
	ID             string          `json:"game_id"`
	Deck           []Card          `json:"deck"`
	HoleCards      []Card          `json:"hole_cards"`
	Board          []Card          `json:"board"`
	Burned         []Card          `json:"burned_cards"`
	Stage          SoloStage       `json:"stage"`
	Logs           []LogEntry      `json:"logs"`
	Pot            int             `json:"pot"`
	PlayerBet      int             `json:"player_bet"`
	DealerBet      int             `json:"dealer_bet"`
	HandEvaluation *HandEvaluation `json:"hand_evaluation,omitempty"`
}

// NewGame shuffles a fresh deck and deals the hero two cards.
func NewGame() *Game {
	g := &Game{
		ID:    uuid.NewString(),
		Deck:  NewDeck(0),
		Stage: SoloDeal,
	}
	g.log(LogInfo, fmt.Sprintf("Creating new game with %d cards in deck", len(g.Deck)))
	g.dealHole()
	return g
}

func (g *Game) log(kind LogKind, msg string) {
	g.Logs = append(g.Logs, LogEntry{
		Message: msg,
		Time:    time.Now().Format("15:04"),
		Kind:    kind,
		Stage:   Stage(g.Stage),
	})
}

func (g *Game) pop() Card {
	c := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	return c
}

// drain takes n cards off the front of the deck.
func (g *Game) drain(n int) []Card {
	out := append([]Card{}, g.Deck[:n]...)
	g.Deck = append([]Card{}, g.Deck[n:]...)
	return out
}

func (g *Game) dealHole() {
	g.HoleCards = []Card{g.pop(), g.pop()}
	g.Stage = SoloPreFlop
	g.log(LogDeal, fmt.Sprintf("Start hand: %s and %s (deck has %d cards)",
		g.HoleCards[0], g.HoleCards[1], len(g.Deck)))
	g.holeCardTip()
}

// Apply plays one hero action. Fold ends the hand; Call and Raise are only
// legal pre-flop and run the board out to showdown, burning three cards
// before the flop comes down.
func (g *Game) Apply(action SoloAction) error {
	switch action {
	case SoloFold:
		g.log(LogAction, "Action: Fold")
		g.Stage = SoloFolded
		g.log(LogInfo, "Game ended")
		g.log(LogTip, "Sometimes folding is the best play. There are more hands coming.")
		return nil
	case SoloCall, SoloRaise:
		if g.Stage != SoloPreFlop {
			return fmt.Errorf("%w: %s at %s", ErrSoloAction, action, g.Stage)
		}
		g.log(LogAction, "Action: "+string(action))
		g.runOut()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrSoloAction, action)
	}
}

// runOut deals flop, turn and river back to back and evaluates the hand.
func (g *Game) runOut() {
	g.Burned = append(g.Burned, g.drain(3)...)
	g.Board = g.drain(3)
	g.Stage = SoloFlop
	g.log(LogDeal, "Flop: "+describeCards(g.Board)+fmt.Sprintf(" (deck has %d cards)", len(g.Deck)))

	g.Board = append(g.Board, g.drain(1)...)
	g.Stage = SoloTurn
	g.log(LogDeal, "Turn: "+g.Board[3].String())

	g.Board = append(g.Board, g.drain(1)...)
	g.Stage = SoloRiver
	g.log(LogDeal, "River: "+g.Board[4].String())

	g.Stage = SoloShowdown
	g.evaluate()
}

func (g *Game) evaluate() {
	if len(g.HoleCards) < 2 || len(g.Board) < 5 {
		return
	}
	ev := EvaluateBestHand(append(append([]Card{}, g.HoleCards...), g.Board...))
	g.HandEvaluation = &ev
	g.log(LogInfo, "Hand evaluation: "+ev.Label)
	if len(ev.Highlighted) > 0 {
		g.log(LogTip, "Highlighted cards: "+describeCards(ev.Highlighted))
	}
}

// Reset starts a new practice hand on a fresh shuffled deck.
func (g *Game) Reset() {
	g.Deck = NewDeck(0)
	g.HoleCards = nil
	g.Board = nil
	g.Burned = nil
	g.Stage = SoloDeal
	g.Logs = nil
	g.Pot = 0
	g.PlayerBet = 0
	g.DealerBet = 0
	g.HandEvaluation = nil
	g.log(LogInfo, "New hand started")
	g.dealHole()
}

// Clone deep-copies the game for snapshots handed out by the store.
func (g *Game) Clone() *Game {
	cp := *g
	cp.Deck = append([]Card{}, g.Deck...)
	cp.HoleCards = append([]Card{}, g.HoleCards...)
	cp.Board = append([]Card{}, g.Board...)
	cp.Burned = append([]Card{}, g.Burned...)
	cp.Logs = append([]LogEntry{}, g.Logs...)
	if g.HandEvaluation != nil {
		ev := *g.HandEvaluation
		ev.Cards = append([]Card{}, g.HandEvaluation.Cards...)
		ev.Highlighted = append([]Card{}, g.HandEvaluation.Highlighted...)
		cp.HandEvaluation = &ev
	}
	return &cp
}

// holeCardTip writes a coaching line about the starting hand.
func (g *Game) holeCardTip() {
	a, b := g.HoleCards[0], g.HoleCards[1]
	high, low := a.Rank, b.Rank
	if low > high {
		high, low = low, high
	}

	if a.Rank == b.Rank {
		switch {
		case a.Rank >= Jack:
			g.log(LogTip, "Excellent! You have a premium pair. Consider raising the bet.")
		case a.Rank >= Eight:
			g.log(LogTip, "Good middle pair. You can play aggressively in early positions.")
		default:
			g.log(LogTip, "Small pair. Play carefully, especially out of position.")
		}
		return
	}

	if a.Suit == b.Suit {
		if high >= Jack {
			g.log(LogTip, "Suited cards with a high card. Good hand to see the flop.")
		} else {
			g.log(LogTip, "Suited but low. Play with caution.")
		}
		return
	}

	switch {
	case high >= King && low >= Ten:
		g.log(LogTip, "Excellent hand! Two connected high cards. Play aggressively.")
	case high >= Queen:
		g.log(LogTip, "Good hand with a high card. Consider seeing the flop.")
	default:
		g.log(LogTip, "Marginal hand. Evaluate your position before playing.")
	}
}

package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is the strictly forward-progressing hand phase.
type Stage string

const (
	StageDealerDraw Stage = "DealerDraw"
	StagePreFlop    Stage = "PreFlop"
	StageFlop       Stage = "Flop"
	StageTurn       Stage = "Turn"
	StageRiver      Stage = "River"
	StageShowdown   Stage = "Showdown"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

type LogKind string

const (
	LogInfo   LogKind = "Info"
	LogAction LogKind = "Action"
	LogDeal   LogKind = "Deal"
	LogTip    LogKind = "Tip"
)

type LogEntry struct {
	Message string  `json:"message"`
	Time    string  `json:"time"`
	Kind    LogKind `json:"kind,omitempty"`
	Stage   Stage   `json:"stage,omitempty"`
}

// Player is one seat at the table. Chips persist across hands; bet, hole
// cards and the folded flag reset with each hand.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsBot     bool   `json:"is_bot"`
	IsHero    bool   `json:"is_hero"`
	Chips     int    `json:"chips"`
	Bet       int    `json:"bet"`
	HoleCards []Card `json:"hole_cards"`
	HasFolded bool   `json:"has_folded"`
	SeatIndex int    `json:"seat_index"`
}

// Config is the table creation request.
type Config struct {
	SmallBlind       int        `json:"small_blind"`
	BigBlind         int        `json:"big_blind"`
	NumBots          int        `json:"num_bots"`
	StartingChips    int        `json:"starting_chips"`
	Difficulty       Difficulty `json:"difficulty,omitempty"`
	TimeLimitSeconds int        `json:"time_limit_seconds,omitempty"`
}

const MaxBots = 10

// Table is the aggregate hand state for one multi-seat game. All mutation
// happens while the owning store holds its lock; nothing here locks.
type Table struct {
	ID      string   `json:"table_id"`
	Deck    []Card   `json:"deck"`
	Board   []Card   `json:"board"`
	Burned  []Card   `json:"burned"`
	Players []Player `json:"players"`

	DealerIndex     int `json:"dealer_index"`
	SmallBlindIndex int `json:"small_blind_index"`
	BigBlindIndex   int `json:"big_blind_index"`
	CurrentIndex    int `json:"current_player_index"`

	Pot        int   `json:"pot"`
	SmallBlind int   `json:"small_blind"`
	BigBlind   int   `json:"big_blind"`
	HandNumber int   `json:"hand_number"`
	CurrentBet int   `json:"current_bet"`
	Stage      Stage `json:"stage"`

	Logs []LogEntry `json:"logs"`

	// Round bookkeeping. LastRaiser is the seat whose raise set the price
	// this street (-1 if unraised); RoundStart is the seat that opened it.
	LastRaiser int `json:"last_raiser_index"`
	RoundStart int `json:"round_start_index"`

	// Bot scheduling. BotPending is the seat the scheduler owes a decision
	// for (-1 when the pending actor is human or the hand is over).
	BotPending     int        `json:"bot_pending_index"`
	BotDecisionDue *time.Time `json:"bot_decision_due,omitempty"`

	Difficulty Difficulty    `json:"difficulty,omitempty"`
	TimeLimit  time.Duration `json:"-"`

	DealerDrawCards      map[string]Card `json:"dealer_draw_cards,omitempty"`
	DealerDrawRevealed   bool            `json:"dealer_draw_revealed"`
	DealerDrawInProgress bool            `json:"dealer_draw_in_progress"`
}

// NoSeat marks an unset seat index.
const NoSeat = -1

// NewTable builds a configured table: hero at seat 0, up to MaxBots bots,
// a freshly shuffled deck, and the stage parked at DealerDraw.
func NewTable(cfg Config) *Table {
	bots := cfg.NumBots
	if bots < 0 {
		bots = 0
	}
	if bots > MaxBots {
		bots = MaxBots
	}
	diff := cfg.Difficulty
	switch diff {
	case Easy, Medium, Hard:
	default:
		diff = Medium
	}
	limit := time.Duration(cfg.TimeLimitSeconds) * time.Second
	if limit <= 0 {
		limit = 30 * time.Second
	}

	players := make([]Player, 0, bots+1)
	players = append(players, Player{
		ID:     uuid.NewString(),
		Name:   "You",
		IsHero: true,
		Chips:  cfg.StartingChips,
	})
	for i := 0; i < bots; i++ {
		players = append(players, Player{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("Bot %d", i+1),
			IsBot:     true,
			Chips:     cfg.StartingChips,
			SeatIndex: i + 1,
		})
	}

	t := &Table{
		ID:                   uuid.NewString(),
		Deck:                 NewDeck(0),
		Players:              players,
		DealerIndex:          NoSeat,
		SmallBlindIndex:      NoSeat,
		BigBlindIndex:        NoSeat,
		CurrentIndex:         NoSeat,
		SmallBlind:           cfg.SmallBlind,
		BigBlind:             cfg.BigBlind,
		HandNumber:           1,
		Stage:                StageDealerDraw,
		LastRaiser:           NoSeat,
		RoundStart:           NoSeat,
		BotPending:           NoSeat,
		Difficulty:           diff,
		TimeLimit:            limit,
		DealerDrawInProgress: true,
	}
	t.addLog(LogInfo, "Table created")
	return t
}

func (t *Table) addLog(kind LogKind, msg string) {
	t.Logs = append(t.Logs, LogEntry{
		Message: msg,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Kind:    kind,
		Stage:   t.Stage,
	})
}

// Seat resolves a player id to its seat index.
func (t *Table) Seat(playerID string) (int, bool) {
	for i := range t.Players {
		if t.Players[i].ID == playerID {
			return i, true
		}
	}
	return 0, false
}

// popCard deals from the end of the deck.
func (t *Table) popCard() Card {
	c := t.Deck[len(t.Deck)-1]
	t.Deck = t.Deck[:len(t.Deck)-1]
	return c
}

// burn moves n cards from the front of the deck to the burn pile.
func (t *Table) burn(n int) {
	t.Burned = append(t.Burned, t.Deck[:n]...)
	t.Deck = append([]Card{}, t.Deck[n:]...)
}

// dealHoleCards gives every seat two cards in two passes, starting left of
// the dealer.
func (t *Table) dealHoleCards() {
	n := len(t.Players)
	for i := range t.Players {
		t.Players[i].HoleCards = nil
	}
	for pass := 0; pass < 2; pass++ {
		for off := 1; off <= n; off++ {
			seat := (t.DealerIndex + off) % n
			t.Players[seat].HoleCards = append(t.Players[seat].HoleCards, t.popCard())
		}
	}
	t.addLog(LogDeal, fmt.Sprintf("Dealt hole cards to %d players", n))
}

// postBlind moves min(amount, chips) from the seat into its bet and the pot.
func (t *Table) postBlind(seat, amount int) {
	p := &t.Players[seat]
	pay := amount
	if pay > p.Chips {
		pay = p.Chips
	}
	p.Chips -= pay
	p.Bet += pay
	t.Pot += pay
}

// Reset starts the next hand: fresh deck, cleared board and bets, rotated
// dealer button, blinds unset until the PreFlop transition reassigns them.
func (t *Table) Reset() {
	t.HandNumber++
	t.Stage = StageDealerDraw
	t.Deck = NewDeck(0)
	t.Board = nil
	t.Burned = nil
	t.Pot = 0
	t.CurrentBet = 0
	for i := range t.Players {
		t.Players[i].Bet = 0
		t.Players[i].HasFolded = false
		t.Players[i].HoleCards = nil
	}
	if t.DealerIndex != NoSeat {
		t.DealerIndex = (t.DealerIndex + 1) % len(t.Players)
	}
	t.SmallBlindIndex = NoSeat
	t.BigBlindIndex = NoSeat
	t.CurrentIndex = NoSeat
	t.LastRaiser = NoSeat
	t.RoundStart = NoSeat
	t.BotPending = NoSeat
	t.BotDecisionDue = nil
	t.DealerDrawCards = nil
	t.DealerDrawRevealed = false
	t.DealerDrawInProgress = true
	t.addLog(LogInfo, "New hand")
}

// Clone deep-copies the table so snapshots can leave the store's lock.
func (t *Table) Clone() *Table {
	cp := *t
	cp.Deck = append([]Card{}, t.Deck...)
	cp.Board = append([]Card{}, t.Board...)
	cp.Burned = append([]Card{}, t.Burned...)
	cp.Players = append([]Player{}, t.Players...)
	for i := range cp.Players {
		cp.Players[i].HoleCards = append([]Card{}, t.Players[i].HoleCards...)
	}
	cp.Logs = append([]LogEntry{}, t.Logs...)
	if t.BotDecisionDue != nil {
		due := *t.BotDecisionDue
		cp.BotDecisionDue = &due
	}
	if t.DealerDrawCards != nil {
		cp.DealerDrawCards = make(map[string]Card, len(t.DealerDrawCards))
		for k, v := range t.DealerDrawCards {
			cp.DealerDrawCards[k] = v
		}
	}
	return &cp
}

package engine

import "fmt"

// Action is a betting move submitted for the current actor.
type Action string

const (
	ActionFold  Action = "Fold"
	ActionCall  Action = "Call"
	ActionRaise Action = "Raise"
	ActionCheck Action = "Check"
	ActionAllIn Action = "AllIn"
)

// ApplyAction applies one action for seat. Calls from a seat that is not the
// current actor are silently ignored so clients can retry or poll safely.
// A raiseTo of 0 means "unspecified": the raise targets current bet plus one
// big blind. Payments are always clamped to the seat's remaining chips.
func (t *Table) ApplyAction(seat int, action Action, raiseTo int) {
	if seat < 0 || seat >= len(t.Players) || seat != t.CurrentIndex {
		return
	}
	p := &t.Players[seat]

	switch action {
	case ActionFold:
		p.HasFolded = true
		t.addLog(LogAction, p.Name+" folded")

	case ActionCheck, ActionCall:
		owed := t.CurrentBet - p.Bet
		if owed < 0 {
			owed = 0
		}
		pay := owed
		if pay > p.Chips {
			pay = p.Chips
		}
		p.Chips -= pay
		p.Bet += pay
		t.Pot += pay
		if owed == 0 {
			t.addLog(LogAction, p.Name+" checked")
		} else {
			t.addLog(LogAction, fmt.Sprintf("%s called %d", p.Name, pay))
		}

	case ActionRaise, ActionAllIn:
		target := raiseTo
		if target <= 0 {
			target = t.CurrentBet + t.BigBlind
		}
		need := target - p.Bet
		if need < 0 {
			need = 0
		}
		pay := need
		if pay > p.Chips {
			pay = p.Chips
		}
		p.Chips -= pay
		p.Bet += pay
		t.Pot += pay
		raised := false
		if p.Bet > t.CurrentBet {
			t.CurrentBet = p.Bet
			t.LastRaiser = seat
			raised = true
		}
		switch {
		case pay == 0:
			t.addLog(LogAction, p.Name+" checked")
		case raised:
			t.addLog(LogAction, fmt.Sprintf("%s raised to %d", p.Name, p.Bet))
		default:
			// clamped below the current bet, so it is really a call
			t.addLog(LogAction, fmt.Sprintf("%s called %d", p.Name, pay))
		}

	default:
		return
	}

	t.afterAction(seat)
}

// afterAction decides what the action left behind: an uncontested pot, a
// closed betting round, or simply the next actor.
func (t *Table) afterAction(seat int) {
	active := t.unfoldedSeats()
	if len(active) <= 1 {
		t.awardUncontested(active)
		return
	}

	next, ok := t.nextActor(seat)
	if !ok {
		t.AdvanceStreet()
		return
	}
	t.setActor(next)
}

// awardUncontested ends the hand when at most one seat remains unfolded.
func (t *Table) awardUncontested(active []int) {
	if len(active) == 1 {
		w := &t.Players[active[0]]
		w.Chips += t.Pot
		t.addLog(LogInfo, fmt.Sprintf("%s wins %d (everyone else folded)", w.Name, t.Pot))
		t.Pot = 0
	} else {
		t.addLog(LogInfo, "No active players")
	}
	t.Stage = StageShowdown
	t.CurrentIndex = NoSeat
	t.clearBotPending()
}

// nextActor walks clockwise from seat to find who acts next this round.
// Folded and all-in seats never take a turn; reaching the round's anchor
// first (the last raiser, or the seat that opened the round when nobody
// raised) means every live stack has responded and the round is closed.
// A fresh raise never closes its own round because the raiser becomes the
// anchor and the walk starts one seat past it.
func (t *Table) nextActor(seat int) (int, bool) {
	anchor := t.RoundStart
	if t.LastRaiser != NoSeat {
		anchor = t.LastRaiser
	}
	n := len(t.Players)
	for off := 1; off <= n; off++ {
		i := (seat + off) % n
		if i == anchor {
			return NoSeat, false
		}
		p := &t.Players[i]
		if !p.HasFolded && p.Chips > 0 {
			return i, true
		}
	}
	return NoSeat, false
}

// nextActable returns the first seat clockwise after from that is unfolded
// and still has chips to bet with.
func (t *Table) nextActable(from int) (int, bool) {
	n := len(t.Players)
	for off := 1; off <= n; off++ {
		i := (from + off) % n
		p := &t.Players[i]
		if !p.HasFolded && p.Chips > 0 {
			return i, true
		}
	}
	return NoSeat, false
}

func (t *Table) unfoldedSeats() []int {
	var out []int
	for i := range t.Players {
		if !t.Players[i].HasFolded {
			out = append(out, i)
		}
	}
	return out
}

// setActor hands the turn to seat and flags the scheduler when it is a bot.
func (t *Table) setActor(seat int) {
	t.CurrentIndex = seat
	if t.Players[seat].IsBot {
		t.BotPending = seat
	} else {
		t.clearBotPending()
	}
}

func (t *Table) clearBotPending() {
	t.BotPending = NoSeat
	t.BotDecisionDue = nil
}

// AdvanceStreet moves the hand one stage forward and performs the entry
// effects for the new street. It serves both the automatic round-close path
// and the operator-driven next-street operation (DealerDraw to PreFlop, or
// forcing progression).
func (t *Table) AdvanceStreet() {
	t.resetRound()
	switch t.Stage {
	case StageDealerDraw:
		t.enterPreFlop()
	case StagePreFlop:
		t.enterStreet(StageFlop)
	case StageFlop:
		t.enterStreet(StageTurn)
	case StageTurn:
		t.enterStreet(StageRiver)
	case StageRiver:
		t.Stage = StageShowdown
		t.addLog(LogInfo, "Showdown")
		t.showdown()
	case StageShowdown:
		// terminal until the next hand
	}
}

// resetRound zeroes the per-street betting state.
func (t *Table) resetRound() {
	for i := range t.Players {
		t.Players[i].Bet = 0
	}
	t.CurrentBet = 0
	t.LastRaiser = NoSeat
}

// enterPreFlop seats the button and blinds, deals hole cards, posts the
// blinds, and opens the action under the gun.
func (t *Table) enterPreFlop() {
	n := len(t.Players)
	if t.DealerIndex == NoSeat {
		t.DealerIndex = 0
	}
	t.Stage = StagePreFlop
	t.SmallBlindIndex = (t.DealerIndex + 1) % n
	t.BigBlindIndex = (t.DealerIndex + 2) % n
	t.DealerDrawInProgress = false
	t.DealerDrawRevealed = true

	t.dealHoleCards()
	t.postBlind(t.SmallBlindIndex, t.SmallBlind)
	t.postBlind(t.BigBlindIndex, t.BigBlind)
	if t.CurrentBet < t.BigBlind {
		t.CurrentBet = t.BigBlind
	}
	t.addLog(LogInfo, fmt.Sprintf("Blinds posted: %d/%d", t.SmallBlind, t.BigBlind))

	// Under the gun, skipping seats the blinds already put all-in and any
	// busted stacks.
	utg, ok := t.nextActable(t.BigBlindIndex)
	if !ok {
		t.runOutBoard()
		return
	}
	t.RoundStart = utg
	t.setActor(utg)
}

// enterStreet burns and deals for flop, turn or river, then opens the action
// at the first unfolded seat left of the dealer.
func (t *Table) enterStreet(stage Stage) {
	t.Stage = stage
	switch stage {
	case StageFlop:
		t.burn(1)
		t.Board = append(t.Board, t.popCard(), t.popCard(), t.popCard())
		t.addLog(LogDeal, "Flop: "+describeCards(t.Board))
	case StageTurn:
		t.burn(1)
		t.Board = append(t.Board, t.popCard())
		t.addLog(LogDeal, "Turn: "+t.Board[3].String())
	case StageRiver:
		t.burn(1)
		t.Board = append(t.Board, t.popCard())
		t.addLog(LogDeal, "River: "+t.Board[4].String())
	}

	first, ok := t.nextActable(t.DealerIndex)
	if !ok {
		t.runOutBoard()
		return
	}
	t.RoundStart = first
	t.setActor(first)
}

// runOutBoard handles the no-action case where every unfolded seat is
// all-in: there is nobody left to bet, so the remaining streets are dealt
// straight through to showdown.
func (t *Table) runOutBoard() {
	t.CurrentIndex = NoSeat
	t.clearBotPending()
	t.AdvanceStreet()
}

// showdown evaluates every eligible seat, splits the pot among the best
// category, and distributes any remainder one chip at a time in seat order.
func (t *Table) showdown() {
	t.clearBotPending()
	t.CurrentIndex = NoSeat

	var winners []int
	var best HandRank
	labels := make(map[int]string)
	for i := range t.Players {
		p := &t.Players[i]
		if p.HasFolded || len(p.HoleCards) != 2 || len(t.Board) != 5 {
			continue
		}
		ev := EvaluateBestHand(append(append([]Card{}, p.HoleCards...), t.Board...))
		labels[i] = ev.Label
		t.addLog(LogInfo, fmt.Sprintf("%s shows %s", p.Name, ev.Label))
		switch {
		case ev.Rank > best:
			best = ev.Rank
			winners = append(winners[:0], i)
		case ev.Rank == best:
			winners = append(winners, i)
		}
	}

	if len(winners) == 0 {
		// Nobody could be evaluated; split across everyone still in.
		winners = t.unfoldedSeats()
		if len(winners) == 0 {
			t.addLog(LogInfo, "No active players")
			return
		}
	}

	share := t.Pot / len(winners)
	rem := t.Pot % len(winners)
	for _, w := range winners {
		t.Players[w].Chips += share
		if rem > 0 {
			t.Players[w].Chips++
			rem--
		}
	}

	if len(winners) == 1 {
		w := t.Players[winners[0]]
		if label, ok := labels[winners[0]]; ok {
			t.addLog(LogInfo, fmt.Sprintf("%s wins %d with %s", w.Name, t.Pot, label))
		} else {
			t.addLog(LogInfo, fmt.Sprintf("%s wins %d", w.Name, t.Pot))
		}
	} else {
		names := ""
		for i, w := range winners {
			if i > 0 {
				names += ", "
			}
			names += t.Players[w].Name
		}
		t.addLog(LogInfo, fmt.Sprintf("Split pot: %s share %d", names, t.Pot))
	}
	t.Pot = 0
}

package bot

import (
	"math/rand"

	"pokertabled/server/engine"
	"pokertabled/server/judge"
)

// AdviceRequest is the stateless decide request: no table id, no persisted
// state, just the situation as the caller sees it.
type AdviceRequest struct {
	HoleCards []engine.Card `json:"hole_cards"`
	Board     []engine.Card `json:"board"`
	Stage     engine.Stage  `json:"stage"`
	Pot       int           `json:"pot"`
	ToCall    int           `json:"to_call"`
	BigBlind  int           `json:"big_blind"`
	MinRaise  int           `json:"min_raise"`
}

type Advice struct {
	Action  engine.Action `json:"action"`
	RaiseTo int           `json:"raise_to,omitempty"`
}

const equityRollouts = 400

// Advise is the legacy single-hand heuristic. Pre-flop it plays a fixed
// hand-class chart; post-flop it checks when free and otherwise compares
// Monte-Carlo equity against the pot odds of the call.
func Advise(rng *rand.Rand, req AdviceRequest) Advice {
	if len(req.HoleCards) < 2 {
		return Advice{Action: engine.ActionFold}
	}

	bb := req.BigBlind
	if bb < 1 {
		bb = 1
	}

	if req.Stage == engine.StagePreFlop || req.Stage == engine.StageDealerDraw {
		return advisePreFlop(req, bb)
	}

	if req.ToCall <= 0 {
		return Advice{Action: engine.ActionCheck}
	}
	equity := judge.Equity(req.HoleCards, req.Board, 1, equityRollouts, rng)
	potOdds := float64(req.ToCall) / float64(req.Pot+req.ToCall)
	if equity >= potOdds {
		return Advice{Action: engine.ActionCall}
	}
	return Advice{Action: engine.ActionFold}
}

func advisePreFlop(req AdviceRequest, bb int) Advice {
	a, b := req.HoleCards[0], req.HoleCards[1]
	high, low := a.Rank, b.Rank
	if low > high {
		high, low = low, high
	}
	pair := a.Rank == b.Rank
	suited := a.Suit == b.Suit
	gap := int(high - low)

	strongPair := pair && high >= engine.Ten
	bigAce := high == engine.Ace && low >= engine.Queen
	suitedBroadway := suited && high >= engine.Queen && low >= engine.Jack
	connectors := gap <= 1 && high >= engine.Ten

	if strongPair || bigAce || suitedBroadway {
		return Advice{Action: engine.ActionRaise, RaiseTo: bb * 3}
	}
	if connectors || suited || pair {
		if req.ToCall == 0 {
			return Advice{Action: engine.ActionCheck}
		}
		if req.ToCall <= bb*2 {
			return Advice{Action: engine.ActionCall}
		}
		return Advice{Action: engine.ActionFold}
	}
	if req.ToCall == 0 {
		return Advice{Action: engine.ActionCheck}
	}
	return Advice{Action: engine.ActionFold}
}

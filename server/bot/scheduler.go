package bot

import (
	"math/rand"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"pokertabled/server/engine"
	"pokertabled/server/store"
)

// Think-time windows per difficulty, before clamping.
const (
	easyDelayMin   = 250 * time.Millisecond
	easyDelayMax   = 900 * time.Millisecond
	mediumDelayMin = 700 * time.Millisecond
	mediumDelayMax = 1600 * time.Millisecond
	hardDelayMin   = 900 * time.Millisecond
	hardDelayMax   = 2200 * time.Millisecond
	delayFloor     = 150 * time.Millisecond
)

// Scheduler plays pending bot turns in the background. Each table gets at
// most one running chain; the chain sleeps with the store unlocked and
// revalidates the pending seat after every wake, so a human action that
// lands mid-sleep simply turns the wake into a no-op.
type Scheduler struct {
	store *store.Store
	clock quartz.Clock
	log   zerolog.Logger

	mu      sync.Mutex
	running map[string]bool
}

func NewScheduler(st *store.Store, clock quartz.Clock, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		store:   st,
		clock:   clock,
		log:     log,
		running: make(map[string]bool),
	}
}

// Kick starts a decision chain for the table unless one is already running.
// Safe to call after every mutation; it returns immediately.
func (s *Scheduler) Kick(tableID string) {
	s.mu.Lock()
	if s.running[tableID] {
		s.mu.Unlock()
		return
	}
	s.running[tableID] = true
	s.mu.Unlock()

	go func() {
		s.run(tableID)
		s.mu.Lock()
		delete(s.running, tableID)
		s.mu.Unlock()
		// A Kick that landed between our last pending check and the
		// deregistration above was a no-op; pick its turn up ourselves.
		if snap, err := s.store.Table(tableID); err == nil && snap.BotPending != engine.NoSeat {
			s.Kick(tableID)
		}
	}()
}

func (s *Scheduler) run(tableID string) {
	rng := rand.New(rand.NewSource(engine.NewSeed()))
	for {
		// Snapshot phase: note which seat we owe a decision and stamp when
		// it is due, then let go of the table while "thinking".
		pending := engine.NoSeat
		var delay time.Duration
		_, err := s.store.UpdateTable(tableID, func(t *engine.Table) error {
			if t.BotPending == engine.NoSeat {
				return nil
			}
			pending = t.BotPending
			delay = s.thinkDelay(rng, t.Difficulty, t.TimeLimit)
			due := s.clock.Now().Add(delay)
			t.BotDecisionDue = &due
			return nil
		})
		if err != nil || pending == engine.NoSeat {
			return
		}

		timer := s.clock.NewTimer(delay)
		<-timer.C

		// Act phase: the turn may have moved while we slept; a stale wake
		// must not act for the seat it snapshotted.
		stale, done := false, false
		_, err = s.store.UpdateTable(tableID, func(t *engine.Table) error {
			if t.BotPending != pending {
				stale = true
				return nil
			}
			p := t.Players[pending]
			d := Decide(rng, t.Difficulty, t.CurrentBet-p.Bet, p.Chips, t.CurrentBet, t.BigBlind)
			s.log.Debug().
				Str("table", tableID).
				Int("seat", pending).
				Str("action", string(d.Action)).
				Int("raise_to", d.RaiseTo).
				Msg("bot acted")
			t.ApplyAction(pending, d.Action, d.RaiseTo)
			done = t.BotPending == engine.NoSeat
			return nil
		})
		if err != nil || done {
			return
		}
		if stale {
			// The turn moved mid-sleep, possibly to another bot. Loop and
			// re-snapshot instead of abandoning the table.
			continue
		}
		// Next actor is also a bot: continue the chain in this goroutine.
	}
}

// thinkDelay draws a uniform delay from the difficulty window, clamped to
// [150ms, per-table time limit].
func (s *Scheduler) thinkDelay(rng *rand.Rand, diff engine.Difficulty, limit time.Duration) time.Duration {
	var lo, hi time.Duration
	switch diff {
	case engine.Easy:
		lo, hi = easyDelayMin, easyDelayMax
	case engine.Hard:
		lo, hi = hardDelayMin, hardDelayMax
	default:
		lo, hi = mediumDelayMin, mediumDelayMax
	}
	d := lo + time.Duration(rng.Int63n(int64(hi-lo)+1))
	if d < delayFloor {
		d = delayFloor
	}
	if limit > 0 && d > limit {
		d = limit
	}
	return d
}

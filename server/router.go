package main

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"pokertabled/server/bot"
	"pokertabled/server/engine"
	"pokertabled/server/store"
)

var errPlayerNotFound = errors.New("player not found")

// Defaults fill the optional table-config fields the client leaves out.
type Defaults struct {
	Difficulty       engine.Difficulty
	TimeLimitSeconds int
}

func Router(st *store.Store, bots *bot.Scheduler, logger zerolog.Logger, defaults Defaults) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	// Legacy: hand out one shuffled deck.
	r.Get("/api/deck", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, engine.NewDeck(0))
	})

	// Multiplayer tables.
	r.Post("/api/table", func(w http.ResponseWriter, r *http.Request) {
		var cfg engine.Config
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		if cfg.Difficulty == "" {
			cfg.Difficulty = defaults.Difficulty
		}
		if cfg.TimeLimitSeconds == 0 {
			cfg.TimeLimitSeconds = defaults.TimeLimitSeconds
		}
		snap := st.PutTable(engine.NewTable(cfg))
		logger.Info().Str("table", snap.ID).Int("players", len(snap.Players)).Msg("table created")
		writeJSON(w, snap)
	})

	r.Get("/api/table/{id}", func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.Table(chi.URLParam(r, "id"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, snap)
	})

	r.Post("/api/table/{id}/action", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			PlayerID string        `json:"player_id"`
			Action   engine.Action `json:"action"`
			RaiseTo  int           `json:"raise_to,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		snap, err := st.UpdateTable(id, func(t *engine.Table) error {
			seat, ok := t.Seat(req.PlayerID)
			if !ok {
				return errPlayerNotFound
			}
			// Out-of-turn submissions fall through as a no-op and the
			// caller just gets the unchanged snapshot back.
			t.ApplyAction(seat, req.Action, req.RaiseTo)
			return nil
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		if snap.BotPending != engine.NoSeat {
			bots.Kick(id)
		}
		writeJSON(w, snap)
	})

	r.Post("/api/table/{id}/next-street", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		snap, err := st.UpdateTable(id, func(t *engine.Table) error {
			t.AdvanceStreet()
			return nil
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		if snap.BotPending != engine.NoSeat {
			bots.Kick(id)
		}
		writeJSON(w, snap)
	})

	r.Post("/api/table/{id}/reset", func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.UpdateTable(chi.URLParam(r, "id"), func(t *engine.Table) error {
			t.Reset()
			return nil
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, snap)
	})

	// Legacy solo practice game.
	r.Post("/api/game", func(w http.ResponseWriter, _ *http.Request) {
		snap := st.PutGame(engine.NewGame())
		logger.Info().Str("game", snap.ID).Msg("game created")
		writeJSON(w, snap)
	})

	r.Get("/api/game/{id}", func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.Game(chi.URLParam(r, "id"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, snap)
	})

	r.Post("/api/game/{id}/action", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action engine.SoloAction `json:"action"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		snap, err := st.UpdateGame(chi.URLParam(r, "id"), func(g *engine.Game) error {
			return g.Apply(req.Action)
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, snap)
	})

	r.Post("/api/game/{id}/reset", func(w http.ResponseWriter, r *http.Request) {
		snap, err := st.UpdateGame(chi.URLParam(r, "id"), func(g *engine.Game) error {
			g.Reset()
			return nil
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, snap)
	})

	// Stateless pre-flop advisor.
	r.Post("/api/bot/decide", func(w http.ResponseWriter, r *http.Request) {
		var req bot.AdviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		rng := rand.New(rand.NewSource(engine.NewSeed()))
		writeJSON(w, bot.Advise(rng, req))
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrTableNotFound),
		errors.Is(err, store.ErrGameNotFound),
		errors.Is(err, errPlayerNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, engine.ErrSoloAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("took", time.Since(start)).
				Msg("request")
		})
	}
}

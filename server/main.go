package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"pokertabled/server/bot"
	"pokertabled/server/engine"
	"pokertabled/server/store"
	"pokertabled/server/util"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func main() {
	_ = godotenv.Load()

	if asBool(os.Getenv("DEBUG")) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := util.NewLogger("server", nil)

	port := getenv("PORT", "3000")
	defaults := Defaults{
		Difficulty:       engine.Difficulty(getenv("DEFAULT_DIFFICULTY", string(engine.Medium))),
		TimeLimitSeconds: atoiDef(os.Getenv("BOT_TIME_LIMIT_SECONDS"), 30),
	}

	st := store.New()
	bots := bot.NewScheduler(st, quartz.NewReal(), util.NewLogger("bots", nil))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      Router(st, bots, logger, defaults),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	logger.Info().Str("addr", srv.Addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

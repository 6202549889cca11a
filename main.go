package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mysterydaily/go-server/internal/catalog"
	"github.com/mysterydaily/go-server/internal/config"
	"github.com/mysterydaily/go-server/internal/daily"
	"github.com/mysterydaily/go-server/internal/game"
	"github.com/mysterydaily/go-server/internal/history"
	"github.com/mysterydaily/go-server/internal/httpserver"
	"github.com/mysterydaily/go-server/internal/session"
	"github.com/mysterydaily/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	puzzles, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load mystery catalog")
	}
	log.Info().Int("mysteries", len(puzzles)).Msg("catalog loaded")

	var kv store.KV
	switch cfg.StoreBackend {
	case "redis":
		kv, err = store.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.StateTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis state store")
	default:
		kv = store.NewMemory()
		log.Info().Msg("using in-memory state store")
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	coord := session.New(kv, puzzles, game.NewValidator(cfg.MatchPolicy, cfg.FuzzyThreshold))

	hist := history.NewStore(db)
	coord.OnSolve = func(ctx context.Context, instanceID string, e game.Entry) {
		rec := history.Solve{
			InstanceID: instanceID,
			Username:   e.Username,
			SolvedOn:   daily.DateKey(time.UnixMilli(e.SolvedAt)),
			Attempts:   e.Attempts,
			HintsUsed:  e.HintsUsed,
			SolvedAt:   time.UnixMilli(e.SolvedAt),
		}
		if err := hist.InsertSolve(ctx, rec); err != nil {
			log.Warn().Err(err).Str("instance", instanceID).Msg("record solve")
		}
	}

	srv := httpserver.New(coord, db)
	log.Info().Str("addr", cfg.Address()).Str("policy", cfg.MatchPolicy).Msg("starting mystery server")
	if err := srv.Start(cfg.Address()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

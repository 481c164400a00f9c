package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/LorenzoMarty/FinLovi/internal/config"
	"github.com/LorenzoMarty/FinLovi/internal/db"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load(log)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	if err := db.RunMigrations(cfg.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migrations")
	}
	log.Info().Msg("migrations applied")
}

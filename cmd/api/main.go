package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("app", "trivia-api").Logger()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("could not load .env file")
		}
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// bounds pool creation and the first database ping
	bootCtx, cancel := context.WithTimeout(context.Background(), cfg.StartupTimeout)
	instance, err := app.New(bootCtx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Dur("startup_timeout", cfg.StartupTimeout).Msg("failed to build app")
	}

	if err := instance.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("runtime error")
	}
}

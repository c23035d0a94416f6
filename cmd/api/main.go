package main

import (
	"context"
	"os"
	"time"

	"orgboard-backend/bootstrap"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	app, err := bootstrap.New()
	if err != nil {
		log.Fatal().Err(err).Msg("app create failed")
	}

	// One-shot load in the background; endpoints serve the Loading state
	// until it resolves.
	go app.RunLoad(context.Background())

	log.Info().Str("port", app.Cfg.Port).Str("env", app.Cfg.Env).Msg("server starting")
	if err := app.Fiber.Listen(":" + app.Cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

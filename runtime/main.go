package main

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/rehab_api/services"
	"github.com/rs/zerolog/log"
)

// @title Rehab Games API
// @version 1.0
// @description Telemetry backend for the rehabilitation mini-games.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded, using process environment")
	}

	if err := services.ConfigureLogging(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE")); err != nil {
		log.Fatal().Err(err).Msg("Invalid logging configuration")
	}

	ctx, err := context.NewCtx(
		&services.ParameterStoreService{},
		&services.DatabaseService{},
		&services.RedisService{},
		&services.RateLimitService{},
		&services.PasscodeService{},
		&services.SessionQuotaService{},
		&services.GameSessionService{},
		&services.ExerciseService{},
		&services.MonitoringService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure services")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service stopped")
		return
	}
}

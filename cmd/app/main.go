package main

import (
	"os"
	"tzdate/config"
	"tzdate/di"
	"tzdate/shared/logger"
	"tzdate/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLoggerWithOutput(os.Stdout, cfg.Server.Env)

	logger.SetLogLevel(cfg)

	provider, err := timezone.Initialize(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("Invalid APP_TIMEZONE, refusing to start")
	}

	logger.UseClock(provider.Now)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire service")
	}

	http.Serve()
}

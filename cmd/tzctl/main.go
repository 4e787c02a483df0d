package main

import (
	"os"
	"tzdate/internal/cli"
	"tzdate/shared/logger"
	"tzdate/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLoggerWithOutput(os.Stderr, "")

	if err := cli.NewRootCmd(os.Stdout, timezone.SystemClock{}).Execute(); err != nil {
		log.Error().Err(err).Msg("tzctl failed")
		os.Exit(1)
	}
}

package handler

import (
	"net/http"
	"os"
	"sync"
	"tzdate/config"
	"tzdate/di"
	"tzdate/shared/failure"
	"tzdate/shared/logger"
	"tzdate/shared/timezone"
	transport "tzdate/transport/http"
	"tzdate/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service *transport.HTTP
	initErr error
)

// Handler is the serverless entry point. The service is wired on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLoggerWithOutput(os.Stdout, cfg.Server.Env)
		logger.SetLogLevel(cfg)

		service, initErr = di.InitializeService()
		if initErr != nil {
			log.Error().Err(initErr).Msg("Failed to wire service")

			return
		}

		logger.UseClock(timezone.Get().Now)
	})

	if initErr != nil {
		response.WithError(w, failure.InternalError(initErr))

		return
	}

	service.ServeHTTP(w, r)
}

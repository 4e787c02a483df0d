package logger

import (
	"io"
	"os"
	"time"
	"tzdate/config"
	"tzdate/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	InitLoggerWithOutput(os.Stdout, constant.ServerEnvDevelopment)
}

// InitLoggerWithOutput writes human readable lines in development and JSON otherwise.
func InitLoggerWithOutput(out io.Writer, env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var writer io.Writer = out
	if env != constant.ServerEnvProduction {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	log.Trace().Str("env", env).Msg("Zerolog initialized.")
}

// UseClock stamps every log line with now, so timestamps follow the application timezone.
func UseClock(now func() time.Time) {
	if now == nil {
		zerolog.TimestampFunc = time.Now

		return
	}

	zerolog.TimestampFunc = now
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

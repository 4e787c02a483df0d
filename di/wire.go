//go:build wireinject
// +build wireinject

package di

import (
	"tzdate/config"
	"tzdate/infras/otel"
	clockHandler "tzdate/internal/handlers/clock"
	"tzdate/shared/timezone"
	"tzdate/transport/http"
	"tzdate/transport/http/middleware"
	"tzdate/transport/http/router"

	clockService "tzdate/internal/domains/clock/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	timezone.Initialize,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var clockDomain = wire.NewSet(
	clockService.New,
)

var domains = wire.NewSet(
	clockDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	clockHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

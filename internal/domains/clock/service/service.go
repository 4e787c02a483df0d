package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"
	"tzdate/infras/otel"
	"tzdate/internal/domains/clock/model/dto"
	"tzdate/shared/constant"
	"tzdate/shared/failure"
	"tzdate/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Clock interface {
	Now(ctx context.Context, zone string) (dto.InstantResponse, error)
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
	Parse(ctx context.Context, req dto.ParseRequest) (dto.InstantResponse, error)
	Zone(ctx context.Context, zone, at string) (dto.ZoneResponse, error)
}

type clockImpl struct {
	provider *timezone.Provider
	otel     otel.Otel
}

func New(provider *timezone.Provider, otel otel.Otel) Clock {
	return &clockImpl{
		provider: provider,
		otel:     otel,
	}
}

// Now implements Clock. An empty zone means the configured default.
func (c *clockImpl) Now(ctx context.Context, zone string) (res dto.InstantResponse, err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Now")
	defer scope.End()

	scope.SetAttribute(constant.OtelZoneAttributeKey, zone)

	instant, err := c.describe(c.provider.NowUTC(), zone)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("zone", zone).Msg("failed to get current time")

		return res, toFailure(err)
	}

	res.FromInstant(instant)

	return res, nil
}

// Convert implements Clock.
func (c *clockImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConvertResponse, err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelZoneAttributeKey:   req.To,
		constant.OtelLayoutAttributeKey: req.Layout,
	})

	at, err := c.parse(req.GoLayout(), req.Time, req.From)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("time", req.Time).Str("from", req.From).Msg("failed to parse time to convert")

		return res, toFailure(err)
	}

	from, err := c.describe(at, req.From)
	if err != nil {
		scope.TraceError(err)

		return res, toFailure(err)
	}

	to, err := c.describe(at, req.To)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("to", req.To).Msg("failed to convert time")

		return res, toFailure(err)
	}

	res.From.FromInstant(from)
	res.To.FromInstant(to)

	return res, nil
}

// Parse implements Clock.
func (c *clockImpl) Parse(ctx context.Context, req dto.ParseRequest) (res dto.InstantResponse, err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Parse")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelZoneAttributeKey:   req.Zone,
		constant.OtelLayoutAttributeKey: req.Layout,
	})

	at, err := c.parse(req.GoLayout(), req.Value, req.Zone)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("value", req.Value).Msg("failed to parse time")

		return res, toFailure(err)
	}

	instant, err := c.describe(at, req.Zone)
	if err != nil {
		scope.TraceError(err)

		return res, toFailure(err)
	}

	res.FromInstant(instant)

	return res, nil
}

// Zone implements Clock. at is RFC3339; empty means now.
func (c *clockImpl) Zone(ctx context.Context, zone, at string) (res dto.ZoneResponse, err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Zone")
	defer scope.End()

	scope.SetAttribute(constant.OtelZoneAttributeKey, zone)

	moment := c.provider.NowUTC()

	if at != constant.Empty {
		moment, err = time.Parse(time.RFC3339, at)
		if err != nil {
			scope.TraceError(err)

			return res, failure.InvalidAtParam
		}
	}

	instant, err := c.provider.DescribeIn(moment, zone)
	if err != nil {
		scope.TraceError(err)

		return res, toFailure(err)
	}

	res.FromInstant(instant)
	res.Default = instant.Zone == c.provider.Zone()

	return res, nil
}

func (c *clockImpl) parse(layout, value, zone string) (time.Time, error) {
	if zone == constant.Empty {
		return c.provider.Parse(layout, value) //nolint:wrapcheck
	}

	return c.provider.ParseIn(layout, value, zone) //nolint:wrapcheck
}

func (c *clockImpl) describe(t time.Time, zone string) (timezone.Instant, error) {
	if zone == constant.Empty {
		return c.provider.Describe(t), nil
	}

	return c.provider.DescribeIn(t, zone) //nolint:wrapcheck
}

func toFailure(err error) error {
	if errors.Is(err, timezone.ErrConfiguration) {
		return failure.BadRequest(err)
	}

	return failure.Unprocessable(err)
}

package clock

import (
	"net/http"
	"tzdate/infras/otel"
	"tzdate/internal/domains/clock/model/dto"
	"tzdate/internal/domains/clock/service"
	"tzdate/shared/constant"
	"tzdate/shared/failure"
	"tzdate/shared/validator"
	"tzdate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Clock
	otel    otel.Otel
}

func New(service service.Clock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/time", func(routerGroup chi.Router) {
		routerGroup.Get("/now", handler.GetNow)
		routerGroup.Post("/convert", handler.Convert)
		routerGroup.Post("/parse", handler.Parse)
		routerGroup.Get("/zones/*", handler.GetZone)
	})
}

// GetNow returns the current moment.
// @Summary Current time
// @Description Current time in the requested zone, or in the configured default zone when none is given.
// @Tags Time
// @Produce json
// @Param zone query string false "IANA timezone identifier"
// @Success 200 {object} dto.InstantResponse
// @Failure 400 {object} response.Error
// @Router /v1/time/now [get]
func (handler *Handler) GetNow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNow")
	defer scope.End()

	zone := r.URL.Query().Get(constant.RequestParamZone)

	now, err := handler.service.Now(ctx, zone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("zone", zone).Msg("failed to get current time")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, now)
}

// Convert converts a moment between zones.
// @Summary Convert time
// @Description Parse a time in the source zone (default zone when empty) and render it in the target zone.
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/convert [post]
func (handler *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert time")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time converted to " + req.To)

	response.WithJSON(w, http.StatusOK, res)
}

// Parse interprets a value in a zone.
// @Summary Parse time
// @Description Parse a value with a named layout in the given zone, or in the default zone when empty.
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.ParseRequest true "Parse Request"
// @Success 200 {object} dto.InstantResponse
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/parse [post]
func (handler *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Parse")
	defer scope.End()

	req := dto.ParseRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Parse(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse time")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetZone describes a zone at a moment.
// @Summary Zone details
// @Description Abbreviation, offset and daylight saving state of a zone at the given moment (now when omitted).
// @Tags Time
// @Produce json
// @Param zone path string true "IANA timezone identifier, e.g. Europe/Rome"
// @Param at query string false "RFC3339 moment"
// @Success 200 {object} dto.ZoneResponse
// @Failure 400 {object} response.Error
// @Router /v1/time/zones/{zone} [get]
func (handler *Handler) GetZone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetZone")
	defer scope.End()

	zone := chi.URLParam(r, constant.Asterix)
	if zone == constant.Empty {
		response.WithError(w, failure.InvalidZoneParam)

		return
	}

	res, err := handler.service.Zone(ctx, zone, r.URL.Query().Get(constant.RequestParamAt))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("zone", zone).Msg("failed to describe zone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
	"tzdate/config"
	otelMocks "tzdate/infras/otel/mocks"
	"tzdate/internal/domains/clock/model/dto"
	"tzdate/internal/domains/clock/service"
	"tzdate/internal/handlers/clock"
	"tzdate/shared/constant"
	"tzdate/shared/timezone"
	transport "tzdate/transport/http"
	"tzdate/transport/http/middleware"
	"tzdate/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, cfg *config.Config) *transport.HTTP {
	t.Helper()

	provider, err := timezone.New(
		timezone.WithDefault("Europe/Rome"),
		timezone.WithClock(timezone.ClockFunc(func() time.Time {
			return time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)
		})),
	)
	require.NoError(t, err)

	ot := otelMocks.NewOtel()
	handlers := router.DomainHandlers{
		Clock: clock.New(service.New(provider, ot), ot),
	}

	return transport.New(cfg, router.New(handlers), middleware.NewAppMiddleware(ot, cfg, provider), ot)
}

func TestHTTP_Health(t *testing.T) {
	server := newServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
	assert.Equal(t, "Europe/Rome", rec.Header().Get(constant.ResponseHeaderTimezone))
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestHTTP_ConcurrentFirstRequests(t *testing.T) {
	server := newServer(t, &config.Config{})

	const workers = 16

	codes := make([]int, workers)

	var wg sync.WaitGroup

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			codes[i] = rec.Code
		}()
	}

	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHTTP_RequestIDPropagated(t *testing.T) {
	server := newServer(t, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "req-123")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestHTTP_NowEndToEnd(t *testing.T) {
	server := newServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/time/now", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))

	var body struct {
		Data dto.InstantResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "Europe/Rome", body.Data.Zone)
	assert.Equal(t, "+02:00", body.Data.Offset)
	assert.Equal(t, "2024-07-15T12:00:00+02:00", body.Data.Time)
	assert.True(t, body.Data.DST)
}

func TestHTTP_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	server := newServer(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/v1/time/now", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTP_UnknownRoute(t *testing.T) {
	server := newServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

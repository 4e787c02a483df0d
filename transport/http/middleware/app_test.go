package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"tzdate/config"
	"tzdate/infras/otel"
	otelMocks "tzdate/infras/otel/mocks"
	"tzdate/shared/constant"
	"tzdate/shared/timezone"
	"tzdate/transport/http/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOtel struct {
	scope *otelMocks.Scope
}

func (r *recordingOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, r.scope
}

func (r *recordingOtel) Shutdown(_ context.Context) error {
	return nil
}

func newMiddleware(t *testing.T, ot otel.Otel) middleware.AppMiddleware {
	t.Helper()

	provider, err := timezone.New(timezone.WithDefault("Asia/Tokyo"))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "tzdate"

	return middleware.NewAppMiddleware(ot, cfg, provider)
}

func TestRequestID_Generated(t *testing.T) {
	mw := newMiddleware(t, otelMocks.NewOtel())

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestTimezone_Header(t *testing.T) {
	mw := newMiddleware(t, otelMocks.NewOtel())

	handler := mw.Timezone(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "Asia/Tokyo", rec.Header().Get(constant.ResponseHeaderTimezone))
}

func TestTracing_RecordsStatus(t *testing.T) {
	scope := &otelMocks.Scope{}
	mw := newMiddleware(t, &recordingOtel{scope: scope})

	handler := mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/time/now", nil))

	assert.True(t, scope.Ended)
	assert.Equal(t, http.StatusInternalServerError, scope.Attributes["http.status_code"])
	assert.Equal(t, "Asia/Tokyo", scope.Attributes["app.timezone"])
	assert.Equal(t, "/v1/time/now", scope.Attributes["http.path"])
	assert.Len(t, scope.Errors, 1)
}

package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"
	"tzdate/infras/otel/mocks"
	"tzdate/internal/domains/clock/model/dto"
	"tzdate/internal/domains/clock/service"
	"tzdate/shared/failure"
	"tzdate/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var winter = time.Date(2024, time.January, 15, 11, 0, 0, 0, time.UTC)

func newService(t *testing.T) service.Clock {
	t.Helper()

	provider, err := timezone.New(
		timezone.WithDefault("Europe/Rome"),
		timezone.WithClock(timezone.ClockFunc(func() time.Time { return winter })),
	)
	require.NoError(t, err)

	return service.New(provider, mocks.NewOtel())
}

func TestClockService_Now(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name     string
		zone     string
		wantErr  bool
		wantCode int
		want     dto.InstantResponse
	}{
		{
			name: "default zone",
			zone: "",
			want: dto.InstantResponse{
				Time:          "2024-01-15T12:00:00+01:00",
				Unix:          winter.Unix(),
				Zone:          "Europe/Rome",
				Abbreviation:  "CET",
				Offset:        "+01:00",
				OffsetSeconds: 3600,
			},
		},
		{
			name: "explicit zone",
			zone: "America/New_York",
			want: dto.InstantResponse{
				Time:          "2024-01-15T06:00:00-05:00",
				Unix:          winter.Unix(),
				Zone:          "America/New_York",
				Abbreviation:  "EST",
				Offset:        "-05:00",
				OffsetSeconds: -18000,
			},
		},
		{
			name:     "unknown zone",
			zone:     "Not/AZone",
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Now(context.Background(), tt.zone)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestClockService_Convert(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name     string
		req      dto.ConvertRequest
		wantErr  bool
		wantCode int
		wantFrom string
		wantTo   string
	}{
		{
			name:     "from default zone",
			req:      dto.ConvertRequest{Time: "2024-07-15 12:00:00", Layout: "datetime", To: "America/New_York"},
			wantFrom: "2024-07-15T12:00:00+02:00",
			wantTo:   "2024-07-15T06:00:00-04:00",
		},
		{
			name:     "from explicit zone",
			req:      dto.ConvertRequest{Time: "2024-07-15 06:00:00", Layout: "datetime", From: "America/New_York", To: "Asia/Tokyo"},
			wantFrom: "2024-07-15T06:00:00-04:00",
			wantTo:   "2024-07-15T19:00:00+09:00",
		},
		{
			name:     "rfc3339 by default",
			req:      dto.ConvertRequest{Time: "2024-01-15T11:00:00Z", To: "Europe/Rome"},
			wantFrom: "2024-01-15T12:00:00+01:00",
			wantTo:   "2024-01-15T12:00:00+01:00",
		},
		{
			name:     "value not matching layout",
			req:      dto.ConvertRequest{Time: "15/07/2024", Layout: "date", To: "UTC"},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "unknown target zone",
			req:      dto.ConvertRequest{Time: "2024-01-15T11:00:00Z", To: "Not/AZone"},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown source zone",
			req:      dto.ConvertRequest{Time: "2024-01-15 11:00:00", Layout: "datetime", From: "Not/AZone", To: "UTC"},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Convert(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFrom, res.From.Time)
			assert.Equal(t, tt.wantTo, res.To.Time)
			assert.Equal(t, res.From.Unix, res.To.Unix)
		})
	}
}

func TestClockService_Parse(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name     string
		req      dto.ParseRequest
		wantErr  bool
		wantTime string
		wantZone string
	}{
		{
			name:     "date in default zone",
			req:      dto.ParseRequest{Value: "2024-01-01", Layout: "date"},
			wantTime: "2024-01-01T00:00:00+01:00",
			wantZone: "Europe/Rome",
		},
		{
			name:     "datetime in explicit zone",
			req:      dto.ParseRequest{Value: "2024-01-01 09:30:00", Layout: "datetime", Zone: "Asia/Kolkata"},
			wantTime: "2024-01-01T09:30:00+05:30",
			wantZone: "Asia/Kolkata",
		},
		{
			name:    "malformed value",
			req:     dto.ParseRequest{Value: "yesterday", Layout: "date"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Parse(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTime, res.Time)
			assert.Equal(t, tt.wantZone, res.Zone)
		})
	}
}

func TestClockService_Zone(t *testing.T) {
	svc := newService(t)

	summer, err := svc.Zone(context.Background(), "Europe/Rome", "2024-07-15T10:00:00Z")
	require.NoError(t, err)
	assert.True(t, summer.Default)
	assert.True(t, summer.DST)
	assert.Equal(t, "CEST", summer.Abbreviation)
	assert.Equal(t, "+02:00", summer.Offset)

	kolkata, err := svc.Zone(context.Background(), "Asia/Kolkata", "")
	require.NoError(t, err)
	assert.False(t, kolkata.Default)
	assert.False(t, kolkata.DST)
	assert.Equal(t, "+05:30", kolkata.Offset)
	assert.Equal(t, "2024-01-15T16:30:00+05:30", kolkata.Time)

	padded, err := svc.Zone(context.Background(), " Europe/Rome ", "")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Rome", padded.Zone)
	assert.True(t, padded.Default)

	_, err = svc.Zone(context.Background(), "Europe/Rome", "tomorrow")
	assert.ErrorIs(t, err, failure.InvalidAtParam)

	_, err = svc.Zone(context.Background(), "Not/AZone", "")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

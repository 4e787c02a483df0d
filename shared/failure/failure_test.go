package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"tzdate/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("invalid timezone \"Not/AZone\"")

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "BadRequest", err: failure.BadRequest(cause), code: http.StatusBadRequest, message: cause.Error()},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("zone is required"), code: http.StatusBadRequest, message: "zone is required"},
		{name: "Unprocessable", err: failure.Unprocessable(cause), code: http.StatusUnprocessableEntity, message: cause.Error()},
		{name: "InternalError", err: failure.InternalError(cause), code: http.StatusInternalServerError, message: cause.Error()},
		{name: "NotFound", err: failure.NotFound("zone"), code: http.StatusNotFound, message: "zone"},
		{name: "InvalidZoneParam", err: failure.InvalidZoneParam, code: http.StatusBadRequest, message: "invalid zone parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestConstructors_NilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.Unprocessable(nil) != nil {
		t.Error("expected Unprocessable(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("converting: %w", failure.BadRequestFromString("bad zone"))

	if got := failure.GetCode(wrapped); got != http.StatusBadRequest {
		t.Errorf("expected wrapped failure code %d, got %d", http.StatusBadRequest, got)
	}

	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected default code %d, got %d", http.StatusInternalServerError, got)
	}
}

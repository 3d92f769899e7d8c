package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFrom_TypedError(t *testing.T) {
	err := Conflict("username already exists")

	got := From(fmt.Errorf("register: %w", err))
	if got.Status != http.StatusConflict {
		t.Errorf("status = %d, want 409", got.Status)
	}
	if got.Message != "username already exists" {
		t.Errorf("message = %q, want the original message", got.Message)
	}
}

func TestFrom_UntypedErrorBecomesInternal(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	got := From(cause)
	if got.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", got.Status)
	}
	// The raw cause must never reach the client message.
	if got.Message != "internal server error" {
		t.Errorf("message = %q, want sanitized internal message", got.Message)
	}
	if !errors.Is(got, cause) {
		t.Error("internal error lost its wrapped cause")
	}
}

func TestExpired_CarriesFlag(t *testing.T) {
	err := Expired("session expired, please log in again")
	if !err.Expired {
		t.Error("Expired() error does not carry the expired flag")
	}
	if err.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", err.Status)
	}
	if Authentication("authentication required").Expired {
		t.Error("plain authentication error must not carry the expired flag")
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Authentication("no"), http.StatusUnauthorized},
		{Authorization("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dupe"), http.StatusConflict},
		{Integrity("referenced"), http.StatusBadRequest},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if tt.err.Status != tt.want {
			t.Errorf("%q status = %d, want %d", tt.err.Message, tt.err.Status, tt.want)
		}
	}
}

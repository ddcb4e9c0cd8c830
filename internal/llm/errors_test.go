package llm

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusError(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusTooManyRequests, "rate"},
		{http.StatusRequestTimeout, "unavailable"},
		{http.StatusBadRequest, "rejected"},
		{http.StatusUnauthorized, "rejected"},
		{http.StatusForbidden, "rejected"},
		{http.StatusNotFound, "rejected"},
		{http.StatusInternalServerError, "unavailable"},
		{http.StatusBadGateway, "unavailable"},
		{0, "unavailable"},
	}
	for _, tt := range tests {
		err := statusError(tt.status, cause)
		var (
			rl  *ErrRateLimit
			rej *ErrRequestRejected
			un  *ErrProviderUnavailable
		)
		var got string
		switch {
		case errors.As(err, &rl):
			got = "rate"
		case errors.As(err, &rej):
			got = "rejected"
		case errors.As(err, &un):
			got = "unavailable"
		}
		if got != tt.want {
			t.Errorf("status %d: got %s (%T), want %s", tt.status, got, err, tt.want)
		}
		if !errors.Is(err, cause) {
			t.Errorf("status %d: cause not wrapped", tt.status)
		}
	}
}

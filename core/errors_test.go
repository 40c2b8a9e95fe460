package core

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_UserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name: "nil error",
			want: "",
		},
		{
			name:     "body message wins",
			err:      &APIError{StatusCode: 422, Message: "The name field is required.", ErrMessage: "invalid"},
			fallback: "Failed to save",
			want:     "The name field is required.",
		},
		{
			name:     "body error when no message",
			err:      &APIError{StatusCode: 403, ErrMessage: "Tenant inactive"},
			fallback: "Failed to load",
			want:     "Tenant inactive",
		},
		{
			name:     "status text when body empty",
			err:      &APIError{StatusCode: http.StatusBadGateway},
			fallback: "Failed to load",
			want:     "Bad Gateway",
		},
		{
			name:     "wrapped api error unwraps",
			err:      errors.Wrap(&APIError{StatusCode: 400, Message: "nope"}, "loading students"),
			fallback: "Failed to load students",
			want:     "nope",
		},
		{
			name:     "transport error message",
			err:      errors.New("dial tcp: connection refused"),
			fallback: "Failed to load",
			want:     "dial tcp: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, tt.fallback))
		})
	}
}

func Test_IsAPIStatus(t *testing.T) {
	err := errors.Wrap(&APIError{StatusCode: http.StatusUnauthorized}, "me")
	assert.True(t, IsAPIStatus(err, http.StatusUnauthorized))
	assert.False(t, IsAPIStatus(err, http.StatusForbidden))
	assert.False(t, IsAPIStatus(errors.New("boom"), http.StatusUnauthorized))
	assert.False(t, IsAPIStatus(nil, http.StatusUnauthorized))
}

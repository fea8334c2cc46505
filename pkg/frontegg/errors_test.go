package frontegg

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "no messages",
			err:      &APIError{StatusCode: 500},
			expected: "frontegg: HTTP 500",
		},
		{
			name:     "single message",
			err:      &APIError{StatusCode: 404, Messages: []string{"Tenant not found"}},
			expected: "frontegg: HTTP 404: Tenant not found",
		},
		{
			name:     "multiple messages",
			err:      &APIError{StatusCode: 400, Messages: []string{"name is required", "email is invalid"}},
			expected: "frontegg: HTTP 400: name is required; email is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		expected []string
	}{
		{
			name:     "errors then message",
			status:   400,
			body:     `{"errors": ["a", "b"], "message": "m"}`,
			expected: []string{"a", "b", "m"},
		},
		{
			name:     "message only",
			status:   401,
			body:     `{"message": "unauthenticated"}`,
			expected: []string{"unauthenticated"},
		},
		{
			name:     "errors only",
			status:   400,
			body:     `{"errors": ["bad name"]}`,
			expected: []string{"bad name"},
		},
		{
			name:     "neither field",
			status:   500,
			body:     `{}`,
			expected: nil,
		},
		{
			name:     "extra fields ignored",
			status:   422,
			body:     `{"message": "nope", "statusCode": 422, "traceId": "abc"}`,
			expected: []string{"nope"},
		},
		{
			name:     "undecodable body",
			status:   500,
			body:     `<html>Internal Server Error</html>`,
			expected: []string{"unable to decode error details"},
		},
		{
			name:     "empty body",
			status:   502,
			body:     ``,
			expected: []string{"unable to decode error details"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := ParseAPIError(tt.status, []byte(tt.body))
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.expected, apiErr.Messages)
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	t.Parallel()

	notFound := &APIError{StatusCode: http.StatusNotFound, Messages: []string{"Tenant not found"}}
	unauthorized := &APIError{StatusCode: http.StatusUnauthorized}
	rateLimited := &APIError{StatusCode: http.StatusTooManyRequests}

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unauthorized))
	assert.True(t, IsUnauthorized(unauthorized))
	assert.True(t, IsRateLimited(rateLimited))
	assert.False(t, IsRateLimited(notFound))

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("getting tenant: %w", notFound)
	assert.True(t, IsNotFound(wrapped))

	// Non-API errors never match.
	assert.False(t, IsNotFound(ErrIteratorExhausted))
	assert.False(t, IsNotFound(nil))
}

package frontegg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-success response from the Frontegg API.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"statusCode" yaml:"statusCode"`
	// Messages is the list of human-readable messages extracted from the
	// error body.
	Messages []string `json:"messages" yaml:"messages"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("frontegg: HTTP %d", e.StatusCode)
	}

	return fmt.Sprintf("frontegg: HTTP %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// errorResponse is the wire shape of a Frontegg error body. Both fields are
// optional.
type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// undecodableBodyMessage is reported when the error body cannot be parsed.
const undecodableBodyMessage = "unable to decode error details"

// ParseAPIError builds an APIError from a non-success response body. The
// merged message list is the body's errors entries followed by its message.
// A body that cannot be decoded yields a single synthetic message rather
// than a decode failure.
func ParseAPIError(statusCode int, body []byte) *APIError {
	var errResp errorResponse

	err := json.Unmarshal(body, &errResp)
	if err != nil {
		return &APIError{
			StatusCode: statusCode,
			Messages:   []string{undecodableBodyMessage},
		}
	}

	messages := errResp.Errors
	if errResp.Message != "" {
		messages = append(messages, errResp.Message)
	}

	return &APIError{
		StatusCode: statusCode,
		Messages:   messages,
	}
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsRateLimited reports whether err is an API error with status 429.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrClientIDRequired  = errors.New("client ID is required")
	ErrSecretKeyRequired = errors.New("secret key is required")
	ErrIteratorExhausted = errors.New("no more items")
)

package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// APIError is a GitHub API failure reduced to what the dashboard shows.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(status int, err error) *APIError {
	var msg string
	switch status {
	case http.StatusUnauthorized:
		msg = "invalid token"
	case http.StatusForbidden:
		msg = "API rate limit reached"
	default:
		msg = fmt.Sprintf("API error: %d", status)
	}
	return &APIError{Status: status, Message: msg, Err: err}
}

func wrapError(resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return newAPIError(http.StatusForbidden, err)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return newAPIError(http.StatusForbidden, err)
	}
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return newAPIError(errResp.Response.StatusCode, err)
	}
	if resp != nil && resp.Response != nil && resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, err)
	}
	return err
}

// StatusCode reports the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

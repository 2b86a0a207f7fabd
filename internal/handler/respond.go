package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hcstnb2047/lvdash/internal/github"
	"github.com/hcstnb2047/lvdash/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// fail maps service and GitHub errors onto HTTP statuses.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}

	msg := err.Error()
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		msg = apiErr.Message
	}
	writeError(w, status, msg)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNoToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrUnknownWorkflow), errors.Is(err, service.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCooldown):
		return http.StatusTooManyRequests
	case errors.Is(err, service.ErrMissingInput),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrEmptyNote),
		errors.Is(err, service.ErrInvalidTheme),
		errors.Is(err, service.ErrInvalidPath):
		return http.StatusBadRequest
	}

	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized:
			return http.StatusUnauthorized
		case http.StatusForbidden:
			return http.StatusTooManyRequests
		case http.StatusNotFound:
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

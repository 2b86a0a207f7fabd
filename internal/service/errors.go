package service

import (
	"errors"

	"github.com/hcstnb2047/lvdash/internal/github"
)

var (
	ErrNoToken         = errors.New("no GitHub token configured")
	ErrInvalidToken    = errors.New("GitHub rejected the token")
	ErrUnknownWorkflow = errors.New("unknown workflow")
	ErrMissingInput    = errors.New("missing required input")
	ErrInvalidInput    = errors.New("invalid input value")
	ErrCooldown        = errors.New("workflow was just dispatched")
	ErrBookNotFound    = errors.New("book not found")
	ErrInvalidStatus   = errors.New("invalid book status")
	ErrEmptyNote       = errors.New("note is empty")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidPath     = errors.New("path is outside the knowledge tree")
)

// ToastMessage is the short text shown to the user for a failed GitHub call.
func ToastMessage(err error) string {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrNoToken) {
		return err.Error()
	}
	return "network error"
}

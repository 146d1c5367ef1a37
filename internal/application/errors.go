package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for API failure classes. The confluence adapter maps HTTP
// statuses onto these so callers can branch without knowing about HTTP.
var (
	ErrUnauthorized = errors.New("authentication failed")
	ErrForbidden    = errors.New("access forbidden")
	ErrPageNotFound = errors.New("page not found")
)

// ValidationError represents an invalid command argument
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

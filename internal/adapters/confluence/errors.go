package confluence

import (
	"fmt"
	"net/http"

	"confex/internal/application"
)

// APIError represents a Confluence API call that returned a non-200 status.
type APIError struct {
	StatusCode int
	PageID     string
	Body       string
}

func (e *APIError) Error() string {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return "Authentication failed (401 Unauthorized). Please check your username and API token."
	case http.StatusForbidden:
		return fmt.Sprintf("Access forbidden (403). You may not have permission to view page %s.", e.PageID)
	case http.StatusNotFound:
		return fmt.Sprintf("Page not found (404). Page ID %s doesn't exist or you don't have access to it.", e.PageID)
	default:
		if e.Body != "" {
			return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
		}
		return fmt.Sprintf("API request failed with status %d", e.StatusCode)
	}
}

func (e *APIError) Is(target error) bool {
	switch target {
	case application.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case application.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case application.ErrPageNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

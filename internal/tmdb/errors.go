package tmdb

import (
	"fmt"

	"github.com/mmcdole/reel/internal/domain"
)

// APIError describes a failed catalog call. It always matches
// domain.ErrCatalogUnavailable under errors.Is.
type APIError struct {
	Op      string // e.g. "discover"
	Status  int    // HTTP status, 0 for transport or decode failures
	Message string // catalog status message or raw body
	Err     error  // underlying cause
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("tmdb: %s: %v", e.Op, domain.ErrCatalogUnavailable)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause
func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrCatalogUnavailable}
	}
	return []error{domain.ErrCatalogUnavailable, e.Err}
}

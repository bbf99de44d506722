package metrics

import (
	"errors"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// Outcome reduces an error to a bounded label value.
func Outcome(err error, success string) string {
	switch {
	case err == nil:
		return success
	case errors.Is(err, domain.ErrInsufficientRole):
		return "insufficient_role"
	case errors.Is(err, domain.ErrNotOwner):
		return "not_owner"
	case errors.Is(err, domain.ErrResourceNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrBadRequest):
		return "bad_request"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}

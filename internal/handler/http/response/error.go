package response

import (
	"errors"
	"net/http"

	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/domain/auth"
	"github.com/pulsehr/ess-portal-go/internal/domain/user"
	"github.com/pulsehr/ess-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, absence.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, absence.ErrDocumentNotAllowed):
		BadRequest(w, "Absence type does not accept a document", nil)
	case errors.Is(err, absence.ErrNoDocument):
		NotFound(w, "Absence has no document")
	case errors.Is(err, absence.ErrNotSubordinate):
		Forbidden(w, "User is not one of your direct reports")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

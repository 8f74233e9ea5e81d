package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/concentration/internal/api/shared"
	"github.com/phrazzld/concentration/internal/domain"
	"github.com/phrazzld/concentration/internal/store"
)

// Request errors produced by the handlers themselves.
var (
	// ErrInvalidSessionID is returned when the {id} path parameter is not a UUID.
	ErrInvalidSessionID = errors.New("invalid session id")

	// ErrInvalidRequest is returned when a request body cannot be decoded.
	ErrInvalidRequest = errors.New("invalid request format")
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, store.ErrSessionNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, ErrInvalidSessionID),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, domain.ErrIndexOutOfRange),
		errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, store.ErrSessionNotFound),
		store.IsNotFoundError(err):
		return "Game not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Game already exists"

	case errors.Is(err, ErrInvalidSessionID):
		return "Invalid game ID format"

	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request format"

	case errors.Is(err, domain.ErrIndexOutOfRange):
		return fmt.Sprintf("Card index must be between 0 and %d", domain.BoardSize-1)

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short message naming
// the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	first := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(first.Field()), getValidationTagMessage(first.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too small"
	case "max":
		return "too large"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status code and safe message for err and logs
// the full error. defaultMsg replaces the generic message for 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/profilecheck/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Verification errors
	case errors.Is(err, domain.ErrResultNotFound):
		return http.StatusNotFound, "RESULT_NOT_FOUND", message
	case errors.Is(err, domain.ErrMissingResume):
		return http.StatusBadRequest, "INVALID_REQUEST", message
	case errors.Is(err, domain.ErrInvalidResume):
		return http.StatusUnprocessableEntity, "INVALID_RESUME", message
	case errors.Is(err, domain.ErrInvalidGitHubProfile):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrGitHubUserNotFound):
		return http.StatusUnprocessableEntity, "GITHUB_USER_NOT_FOUND", message
	case errors.Is(err, domain.ErrGitHubUnavailable):
		return http.StatusBadGateway, "GITHUB_UNAVAILABLE", "GitHub could not be reached, try again later"

	// Admin errors
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", message
	case errors.Is(err, domain.ErrEmptyCredentials):
		return http.StatusBadRequest, "INVALID_REQUEST", message
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "INVALID_SESSION", message

	// Default: internal server error
	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}

package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Verification errors
	ErrResultNotFound       = errors.New("verification result not found")
	ErrInvalidResume        = errors.New("resume is not a readable PDF")
	ErrMissingResume        = errors.New("resume file is required")
	ErrInvalidGitHubProfile = errors.New("invalid github profile")
	ErrGitHubUserNotFound   = errors.New("github user not found")
	ErrGitHubUnavailable    = errors.New("github is unavailable")
	ErrNegativeCount        = errors.New("skill count must not be negative")

	// Admin errors
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrEmptyCredentials   = errors.New("username and password are required")
)

package domain

import "time"

// Admin is an operator allowed to browse stored results.
type Admin struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is an authenticated admin login.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is no longer valid at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mtlprog/profilecheck/internal/domain"
)

type contextKey string

const (
	// ContextKeySession is the key for storing the admin session in request context.
	ContextKeySession contextKey = "session"

	// SessionCookieName is the cookie carrying the admin session token.
	SessionCookieName = "profilecheck_session"
)

// SessionAuthenticator resolves a session token to a live session.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// AuthMiddleware handles session cookie authentication for admin pages.
type AuthMiddleware struct {
	sessions  SessionAuthenticator
	loginPath string
}

// NewAuthMiddleware creates a new AuthMiddleware redirecting anonymous
// visitors to loginPath.
func NewAuthMiddleware(sessions SessionAuthenticator, loginPath string) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:  sessions,
		loginPath: loginPath,
	}
}

// Authenticate validates the session cookie and adds the session to request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, m.loginPath, http.StatusSeeOther)
			return
		}

		session, err := m.sessions.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				http.Redirect(w, r, m.loginPath, http.StatusSeeOther)
				return
			}
			slog.Error("session lookup failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeySession, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext retrieves the authenticated admin session from request context.
func GetSessionFromContext(ctx context.Context) (*domain.Session, error) {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	if !ok || session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

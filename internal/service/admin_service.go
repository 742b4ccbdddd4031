package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtlprog/profilecheck/internal/domain"
)

// DefaultSessionTTL is how long an admin login stays valid.
const DefaultSessionTTL = 12 * time.Hour

// AdminStore persists admin accounts.
type AdminStore interface {
	Upsert(ctx context.Context, username, passwordHash string) error
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

// SessionStore persists admin sessions.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	GetValid(ctx context.Context, token string, now time.Time) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// AdminService handles admin accounts and logins.
type AdminService struct {
	admins     AdminStore
	sessions   SessionStore
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAdminService creates a new AdminService.
func NewAdminService(admins AdminStore, sessions SessionStore) *AdminService {
	return &AdminService{
		admins:     admins,
		sessions:   sessions,
		sessionTTL: DefaultSessionTTL,
		now:        time.Now,
	}
}

// CreateAdmin creates the admin or resets its password.
func (s *AdminService) CreateAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.admins.Upsert(ctx, username, string(hash)); err != nil {
		return err
	}

	slog.Info("admin saved", "username", username)
	return nil
}

// Login checks the credentials and opens a new session.
func (s *AdminService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrEmptyCredentials
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		Username:  admin.Username,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	slog.Info("admin logged in", "username", admin.Username)
	return session, nil
}

// Authenticate returns the live session for token.
func (s *AdminService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessions.GetValid(ctx, token, s.now())
}

// Logout ends the session for token.
func (s *AdminService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

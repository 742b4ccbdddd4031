package service_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/mtlprog/profilecheck/internal/domain"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(r io.ReaderAt, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeRepos struct {
	summary *domain.RepoSummary
	err     error
}

func (f *fakeRepos) FetchRepoSummary(ctx context.Context, username string) (*domain.RepoSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

type fakeContributions struct {
	levels []int
	err    error
}

func (f *fakeContributions) FetchLevels(ctx context.Context, username string) ([]int, error) {
	return f.levels, f.err
}

type fakeResults struct {
	mu      sync.Mutex
	created []*domain.VerificationResult
	err     error
}

func (f *fakeResults) Create(ctx context.Context, result *domain.VerificationResult) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	result.CreatedAt = time.Now()
	f.created = append(f.created, result)
	return nil
}

type fakeAdmins struct {
	admins map[string]*domain.Admin
}

func newFakeAdmins() *fakeAdmins {
	return &fakeAdmins{admins: make(map[string]*domain.Admin)}
}

func (f *fakeAdmins) Upsert(ctx context.Context, username, passwordHash string) error {
	f.admins[username] = &domain.Admin{Username: username, PasswordHash: passwordHash}
	return nil
}

func (f *fakeAdmins) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return admin, nil
}

type fakeSessions struct {
	sessions map[string]*domain.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessions) Create(ctx context.Context, session *domain.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessions) GetValid(ctx context.Context, token string, now time.Time) (*domain.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.IsExpired(now) {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessions) Delete(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

var errBoom = errors.New("boom")

package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mtlprog/profilecheck/internal/domain"
	"github.com/mtlprog/profilecheck/internal/gateway"
	"github.com/mtlprog/profilecheck/internal/resume"
)

// ResultStore persists verification results.
type ResultStore interface {
	Create(ctx context.Context, result *domain.VerificationResult) error
}

// VerifyRequest is an uploaded resume together with the claimed GitHub profile.
type VerifyRequest struct {
	Filename      string
	Resume        io.Reader
	GitHubProfile string
}

// VerificationService compares resumes with GitHub profiles.
type VerificationService struct {
	extractor     resume.TextExtractor
	repos         gateway.RepoFetcher
	contributions gateway.ContributionFetcher
	results       ResultStore
	uploadDir     string
}

// NewVerificationService creates a new VerificationService storing uploads under uploadDir.
func NewVerificationService(
	extractor resume.TextExtractor,
	repos gateway.RepoFetcher,
	contributions gateway.ContributionFetcher,
	results ResultStore,
	uploadDir string,
) *VerificationService {
	return &VerificationService{
		extractor:     extractor,
		repos:         repos,
		contributions: contributions,
		results:       results,
		uploadDir:     uploadDir,
	}
}

// Verify stores the uploaded resume, extracts its skills, analyses the GitHub
// profile and persists the scored result.
func (s *VerificationService) Verify(ctx context.Context, req VerifyRequest) (*domain.VerificationResult, error) {
	if req.Resume == nil {
		return nil, domain.ErrMissingResume
	}

	username, err := gateway.ParseUsername(req.GitHubProfile)
	if err != nil {
		return nil, err
	}

	result := &domain.VerificationResult{
		ID:             uuid.NewString(),
		ResumeFilename: SecureFilename(req.Filename),
		GitHubProfile:  strings.TrimSpace(req.GitHubProfile),
		GitHubUsername: username,
	}

	text, err := s.saveAndExtract(result.ID, result.ResumeFilename, req.Resume)
	if err != nil {
		return nil, err
	}
	result.ResumeSkills = resume.MatchSkills(text)

	var summary *domain.RepoSummary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.repos.FetchRepoSummary(gctx, username)
		return err
	})
	g.Go(func() error {
		levels, err := s.contributions.FetchLevels(gctx, username)
		if err != nil {
			slog.Warn("failed to fetch contribution levels", "username", username, "error", err)
			return nil
		}
		result.ContributionLevels = levels
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.GitHubLanguages = summary.Languages
	result.RepoCount = summary.RepoCount
	result.SourceRepoCount = summary.SourceCount
	result.ForkRepoCount = summary.ForkCount
	result.MatchedSkills, result.Score = Score(result.ResumeSkills, result.GitHubLanguages)
	result.Status = StatusFor(result.Score)

	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}

	slog.Info("verification stored",
		"result_id", result.ID,
		"github_username", username,
		"score", result.Score,
		"status", result.Status,
	)

	return result, nil
}

// saveAndExtract writes the upload to disk and returns its plain text.
func (s *VerificationService) saveAndExtract(id, filename string, upload io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o750); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.uploadDir, id+"_"+filename)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o640)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, upload)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	if size == 0 {
		return "", domain.ErrMissingResume
	}

	return s.extractor.ExtractText(f, size)
}

// SecureFilename reduces an uploaded file name to a safe base name made of
// ASCII letters, digits, dots, dashes and underscores.
func SecureFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "resume.pdf"
	}
	return cleaned
}

package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtlprog/profilecheck/internal/domain"
)

const (
	// DefaultListLimit is used when a list query does not set a limit.
	DefaultListLimit = 50
	// MaxListLimit caps the page size of list queries.
	MaxListLimit = 500
)

// resultColumns is the shared list of columns for verification result queries.
var resultColumns = []string{
	"id", "resume_filename", "github_profile", "github_username",
	"resume_skills", "github_languages", "matched_skills", "score", "status",
	"repo_count", "source_repo_count", "fork_repo_count", "contribution_levels",
	"created_at",
}

// ListFilter holds paging and filtering options for result listings.
type ListFilter struct {
	GitHubUsername string
	Limit          int
	Offset         int
}

// ResultRepository handles database operations for verification results.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// scanResult scans a single row into a VerificationResult struct.
func scanResult(row pgx.Row) (*domain.VerificationResult, error) {
	var result domain.VerificationResult
	err := row.Scan(
		&result.ID,
		&result.ResumeFilename,
		&result.GitHubProfile,
		&result.GitHubUsername,
		&result.ResumeSkills,
		&result.GitHubLanguages,
		&result.MatchedSkills,
		&result.Score,
		&result.Status,
		&result.RepoCount,
		&result.SourceRepoCount,
		&result.ForkRepoCount,
		&result.ContributionLevels,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("scan result: %w", err)
	}
	return &result, nil
}

// Create inserts a verification result and fills in its creation time.
func (r *ResultRepository) Create(ctx context.Context, result *domain.VerificationResult) error {
	query, args, err := psql.
		Insert("verification_results").
		Columns(resultColumns[:len(resultColumns)-1]...).
		Values(
			result.ID,
			result.ResumeFilename,
			result.GitHubProfile,
			result.GitHubUsername,
			nonNil(result.ResumeSkills),
			nonNil(result.GitHubLanguages),
			nonNil(result.MatchedSkills),
			result.Score,
			result.Status,
			result.RepoCount,
			result.SourceRepoCount,
			result.ForkRepoCount,
			nonNilInts(result.ContributionLevels),
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&result.CreatedAt); err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// GetByID retrieves a verification result by ID.
func (r *ResultRepository) GetByID(ctx context.Context, id string) (*domain.VerificationResult, error) {
	query, args, err := psql.
		Select(resultColumns...).
		From("verification_results").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return scanResult(r.pool.QueryRow(ctx, query, args...))
}

// List returns verification results, newest first.
func (r *ResultRepository) List(ctx context.Context, filter ListFilter) ([]*domain.VerificationResult, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	qb := psql.
		Select(resultColumns...).
		From("verification_results").
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if filter.GitHubUsername != "" {
		qb = qb.Where(sq.Eq{"github_username": filter.GitHubUsername})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []*domain.VerificationResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return results, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

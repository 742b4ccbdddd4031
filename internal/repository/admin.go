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

// AdminRepository handles database operations for admins.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// Upsert creates an admin or replaces the password hash of an existing one.
func (r *AdminRepository) Upsert(ctx context.Context, username, passwordHash string) error {
	query, args, err := psql.
		Insert("admins").
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}

// GetByUsername finds an admin by username.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query, args, err := psql.
		Select("username", "password_hash", "created_at").
		From("admins").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var admin domain.Admin
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("query admin: %w", err)
	}
	return &admin, nil
}

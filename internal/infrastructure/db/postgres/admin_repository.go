package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/licensehub/client-admin/internal/core/domain"
)

// AdminRepository persists administrator accounts in the supermasters table.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.pool.QueryRow(ctx,
		`SELECT username, password, logout_timestamp FROM supermasters WHERE username = $1`,
		username,
	).Scan(&admin.Username, &admin.PasswordHash, &admin.LogoutAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE supermasters SET password = $2 WHERE username = $1`,
		username, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) RecordLogout(ctx context.Context, username string, at time.Time) error {
	// No existence check: stamping an unknown username affects zero rows.
	_, err := r.pool.Exec(ctx,
		`UPDATE supermasters SET logout_timestamp = $2 WHERE username = $1`,
		username, at,
	)
	if err != nil {
		return fmt.Errorf("record logout: %w", err)
	}
	return nil
}

func (r *AdminRepository) LastLogout(ctx context.Context, username string) (*time.Time, error) {
	var at *time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT logout_timestamp FROM supermasters WHERE username = $1`,
		username,
	).Scan(&at)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("last logout: %w", err)
	}
	return at, nil
}

package ports

import (
	"context"
	"time"

	"github.com/licensehub/client-admin/internal/core/domain"
)

// AdminRepository defines persistence for administrator accounts.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	// RecordLogout stamps the logout timestamp. It does not check that the
	// account exists; stamping an unknown username is a no-op.
	RecordLogout(ctx context.Context, username string, at time.Time) error
	// LastLogout returns the account's logout timestamp, nil if the account
	// has never logged out. Unknown accounts yield domain.ErrAdminNotFound.
	LastLogout(ctx context.Context, username string) (*time.Time, error)
}

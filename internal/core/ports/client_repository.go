package ports

import (
	"context"

	"github.com/licensehub/client-admin/internal/core/domain"
)

// ClientRepository defines the CRUD contract over the clients table.
// There is no delete operation; client rows are only ever mutated in place.
type ClientRepository interface {
	FindAll(ctx context.Context) ([]domain.Client, error)
	// FindByNameContains matches client_name case-insensitively against the
	// fragment. No matches yields an empty slice, not an error.
	FindByNameContains(ctx context.Context, fragment string) ([]domain.Client, error)
	Insert(ctx context.Context, c *domain.Client) (int64, error)
	// UpdateByID returns the number of rows affected; zero means the id does
	// not exist. The stored image name is only overwritten when c.Image is
	// non-empty.
	UpdateByID(ctx context.Context, id int64, c *domain.Client) (int64, error)
	// ImageName returns the stored asset name on the row, empty if none.
	ImageName(ctx context.Context, id int64) (string, error)
	AppUpdateInfo(ctx context.Context, id int64) (bool, string, error)
	SetAppUpdateInfo(ctx context.Context, id int64, flag bool, link string) (int64, error)
}

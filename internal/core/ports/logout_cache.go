package ports

import (
	"context"
	"time"
)

// LogoutCache caches per-admin last-logout timestamps so token verification
// does not need a database round trip per request. Implementations are
// best-effort; callers fall back to the AdminRepository on any error.
type LogoutCache interface {
	// LastLogout returns the cached timestamp and whether there was a hit.
	LastLogout(ctx context.Context, username string) (time.Time, bool, error)
	SetLastLogout(ctx context.Context, username string, at time.Time) error
}

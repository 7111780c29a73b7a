package ports

import "context"

// AuthService implements login, logout, password changes, and token
// verification for administrator accounts.
type AuthService interface {
	// Login checks the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// Logout stamps the account's logout timestamp. Tokens issued before the
	// stamp fail verification from then on.
	Logout(ctx context.Context, username string) error
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
	// Verify checks the token's signature, expiry, and that it was issued
	// after the account's last logout. Returns the embedded username.
	Verify(ctx context.Context, token string) (string, error)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/licensehub/client-admin/internal/core/domain"
	"github.com/licensehub/client-admin/internal/core/ports"
)

// AuthService implements administrator login, logout, password changes, and
// token verification. Tokens are HS256 JWTs carrying the username plus iat
// and exp claims; verification additionally rejects tokens issued before the
// account's last recorded logout, so logout actually revokes.
type AuthService struct {
	repo      ports.AdminRepository
	logouts   ports.LogoutCache
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AdminRepository, logouts ports.LogoutCache, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, logouts: logouts, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issueToken(admin.Username)
}

func (s *AuthService) Logout(ctx context.Context, username string) error {
	now := time.Now().UTC()
	if err := s.repo.RecordLogout(ctx, username, now); err != nil {
		return err
	}
	// Cache write is best effort; verification falls back to the repository.
	_ = s.logouts.SetLastLogout(ctx, username, now)
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, username, string(hash))
}

func (s *AuthService) Verify(ctx context.Context, token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return "", domain.ErrInvalidToken
	}

	issuedAt, err := claims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return "", domain.ErrInvalidToken
	}

	lastLogout, err := s.lastLogout(ctx, username)
	if err != nil {
		return "", err
	}
	// iat has second resolution; truncate the logout stamp to match so a
	// login in the same second as a logout is not revoked by rounding.
	if lastLogout != nil && issuedAt.Time.Before(lastLogout.Truncate(time.Second)) {
		return "", domain.ErrInvalidToken
	}

	return username, nil
}

// lastLogout resolves the account's last-logout timestamp, preferring the
// cache and falling back to the repository on a miss or a cache error.
func (s *AuthService) lastLogout(ctx context.Context, username string) (*time.Time, error) {
	if at, ok, err := s.logouts.LastLogout(ctx, username); err == nil && ok {
		return &at, nil
	}

	at, err := s.repo.LastLogout(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			// The account vanished after the token was issued.
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if at != nil {
		_ = s.logouts.SetLastLogout(ctx, username, *at)
	}
	return at, nil
}

func (s *AuthService) issueToken(username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

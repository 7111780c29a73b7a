package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/licensehub/client-admin/internal/api/metrics"
	"github.com/licensehub/client-admin/internal/core/domain"
	"github.com/licensehub/client-admin/internal/core/ports"
)

// Auth verifies the bearer token and injects the authenticated username into
// the request context. A missing credential is rejected with 401, a
// present-but-invalid one (bad signature, malformed, expired, or issued
// before the account's last logout) with 403; the mapping happens in the
// central error handler.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			username, err := auth.Verify(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set("username", username)

			return next(c)
		}
	}
}

package authmw

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/burakmt/todo-platform/pkg/tokens"
)

const ctxPrincipal = "auth_principal"

// Principal is the authenticated caller, carried explicitly on the
// request context instead of being re-parsed downstream.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// RequireAuth validates the Authorization bearer header and stores the
// resulting Principal on the echo context. Missing or invalid tokens are
// 401; authorization decisions (403) belong to the policy middlewares.
func RequireAuth(issuer *tokens.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := BearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := issuer.Decode(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			if claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has no subject")
			}

			c.Set(ctxPrincipal, Principal{
				UserID: claims.Subject,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			return next(c)
		}
	}
}

// BearerToken extracts the raw token from the Authorization header,
// stripping the scheme prefix.
func BearerToken(c echo.Context) (string, bool) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.Fields(h)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(ctxPrincipal).(Principal)
	return p, ok
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/burakmt/todo-platform/pkg/middleware/auth"
	"github.com/burakmt/todo-platform/services/user/internal/models"
)

// The policies are pure predicates over (principal, route id); the echo
// wrappers only translate a deny into 403. They assume RequireAuth ran
// first, so a missing principal is a 401, never a panic.

func adminOnly(p authmw.Principal) bool {
	return p.Role == models.RoleAdmin
}

// selfOrAdmin: admin wins first, then the caller's own id. First match is
// terminal.
func selfOrAdmin(p authmw.Principal, routeID string) bool {
	if adminOnly(p) {
		return true
	}
	return p.UserID != "" && routeID != "" && p.UserID == routeID
}

func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := authmw.PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if !adminOnly(p) {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

func SelfOrAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := authmw.PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if !selfOrAdmin(p, c.Param("id")) {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/burakmt/todo-platform/pkg/middleware/auth"
	"github.com/burakmt/todo-platform/pkg/tokens"
)

type Deps struct {
	TodoHandler *TodoHTTP
	Issuer      *tokens.Issuer
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api/todo")
	api.Use(authmw.RequireAuth(d.Issuer))

	api.GET("", d.TodoHandler.ListAll, adminOnly())
	api.GET("/mine", d.TodoHandler.ListMine)
	api.GET("/search", d.TodoHandler.Search)
	api.POST("", d.TodoHandler.Create)
	api.GET("/:id", d.TodoHandler.Get)
	api.PUT("/:id", d.TodoHandler.Update)
	api.DELETE("/:id", d.TodoHandler.Delete)
}

func adminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := authmw.PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if p.Role != adminRole {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/burakmt/todo-platform/pkg/middleware/auth"
	"github.com/burakmt/todo-platform/pkg/tokens"
)

type Deps struct {
	UserURL string
	TodoURL string
	Issuer  *tokens.Issuer
}

// Register wires the edge routes. The auth endpoints pass through
// unauthenticated; everything else requires a valid bearer token before
// it is proxied. Services still verify tokens themselves, the gateway
// just rejects garbage early.
func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	userProxy, err := newProxy(d.UserURL)
	if err != nil {
		return err
	}
	todoProxy, err := newProxy(d.TodoURL)
	if err != nil {
		return err
	}

	e.POST("/api/user/register", userProxy)
	e.POST("/api/user/login", userProxy)
	e.POST("/api/user/refresh-token", userProxy)

	api := e.Group("/api")
	api.Use(authmw.RequireAuth(d.Issuer))

	api.Any("/user", userProxy)
	api.Any("/user/*", userProxy)
	api.Any("/todo", todoProxy)
	api.Any("/todo/*", todoProxy)

	return nil
}

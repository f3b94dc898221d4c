package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/burakmt/todo-platform/pkg/middleware/auth"
	"github.com/burakmt/todo-platform/pkg/tokens"
	"github.com/burakmt/todo-platform/services/user/internal/middleware"
)

type Deps struct {
	AuthHandler *AuthHTTP
	UserHandler *UserHTTP
	Issuer      *tokens.Issuer
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api/user")

	api.POST("/register", d.UserHandler.Register)
	api.POST("/login", d.AuthHandler.Login)
	api.POST("/refresh-token", d.AuthHandler.Refresh)

	private := api.Group("")
	private.Use(authmw.RequireAuth(d.Issuer))

	private.POST("/logout", d.AuthHandler.Logout)

	private.GET("", d.UserHandler.List, middleware.AdminOnly())
	private.GET("/username/:username", d.UserHandler.GetByUsername, middleware.AdminOnly())
	private.GET("/email/:email", d.UserHandler.GetByEmail, middleware.AdminOnly())
	private.DELETE("/:id", d.UserHandler.Delete, middleware.AdminOnly())

	private.GET("/:id", d.UserHandler.GetByID, middleware.SelfOrAdmin())
	private.PUT("/:id", d.UserHandler.Update, middleware.SelfOrAdmin())
}

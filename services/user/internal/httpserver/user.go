package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/burakmt/todo-platform/pkg/logging"
	"github.com/burakmt/todo-platform/services/user/internal/service"
	"github.com/burakmt/todo-platform/services/user/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username, email and password are required")
	}

	user, err := h.Svc.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusBadRequest, "email already registered")
		}
		return err
	}

	return c.JSON(http.StatusCreated, transport.ToUserResponse(user))
}

func (h *UserHTTP) List(c echo.Context) error {
	users, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.ToUserResponses(users))
}

func (h *UserHTTP) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapNotFound(err)
	}
	return c.JSON(http.StatusOK, transport.ToUserResponse(user))
}

func (h *UserHTTP) GetByUsername(c echo.Context) error {
	user, err := h.Svc.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return mapNotFound(err)
	}
	return c.JSON(http.StatusOK, transport.ToUserResponse(user))
}

func (h *UserHTTP) GetByEmail(c echo.Context) error {
	user, err := h.Svc.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return mapNotFound(err)
	}
	return c.JSON(http.StatusOK, transport.ToUserResponse(user))
}

func (h *UserHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_update")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	err = h.Svc.Update(ctx, id, service.UpdateParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHTTP) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return err
}

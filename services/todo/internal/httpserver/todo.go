package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/burakmt/todo-platform/pkg/logging"
	authmw "github.com/burakmt/todo-platform/pkg/middleware/auth"
	"github.com/burakmt/todo-platform/services/todo/internal/service"
	"github.com/burakmt/todo-platform/services/todo/internal/transport"
)

const adminRole = "Admin"

type TodoHTTP struct {
	Svc *service.TodoService
}

func caller(c echo.Context) (service.Caller, error) {
	p, ok := authmw.PrincipalFrom(c)
	if !ok {
		return service.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	id, err := strconv.ParseInt(p.UserID, 10, 64)
	if err != nil {
		return service.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid subject claim")
	}
	return service.Caller{UserID: id, IsAdmin: p.Role == adminRole}, nil
}

func (h *TodoHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo_create")

	cl, err := caller(c)
	if err != nil {
		return err
	}

	var req transport.CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	todo, err := h.Svc.Create(ctx, cl, service.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, transport.ToTodoResponse(todo))
}

func (h *TodoHTTP) Get(c echo.Context) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	todo, err := h.Svc.Get(c.Request().Context(), cl, id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, transport.ToTodoResponse(todo))
}

func (h *TodoHTTP) ListAll(c echo.Context) error {
	todos, err := h.Svc.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.ToTodoResponses(todos))
}

func (h *TodoHTTP) ListMine(c echo.Context) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}

	todos, err := h.Svc.ListMine(c.Request().Context(), cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.ToTodoResponses(todos))
}

func (h *TodoHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo_update")

	cl, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	err = h.Svc.Update(ctx, cl, id, service.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TodoHTTP) Delete(c echo.Context) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), cl, id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TodoHTTP) Search(c echo.Context) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}

	if !h.Svc.Search.Enabled() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not configured")
	}

	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	from, _ := strconv.Atoi(c.QueryParam("from"))
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 || size > 100 {
		size = 20
	}

	total, todos, err := h.Svc.SearchMine(c.Request().Context(), cl, query, from, size)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.SearchResponse{
		Total: total,
		Items: transport.ToTodoResponses(todos),
	})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "todo not found")
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}
	return err
}

package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/burakmt/todo-platform/pkg/events"
	"github.com/burakmt/todo-platform/pkg/logging"
	"github.com/burakmt/todo-platform/services/todo/internal/models"
	"github.com/burakmt/todo-platform/services/todo/internal/repo"
	"github.com/burakmt/todo-platform/services/todo/internal/search"
)

var (
	ErrNotFound  = errors.New("todo not found")
	ErrForbidden = errors.New("not the owner")
)

type TodoService struct {
	Repo   *repo.GormRepo
	Search *search.Index
	Events *events.Producer
}

// Caller identifies who is acting; ownership checks live here so every
// transport gets the same rule: owners and admins, nobody else.
type Caller struct {
	UserID  int64
	IsAdmin bool
}

func (c Caller) owns(t *models.Todo) bool {
	return c.IsAdmin || c.UserID == t.UserID
}

type CreateParams struct {
	Title       string
	Description string
	IsCompleted bool
}

type UpdateParams struct {
	Title       string
	Description string
	IsCompleted bool
}

func (s *TodoService) Create(ctx context.Context, caller Caller, p CreateParams) (*models.Todo, error) {
	l := logging.FromContext(ctx).With("svc", "todo.create")

	todo := &models.Todo{
		Title:       p.Title,
		Description: p.Description,
		IsCompleted: p.IsCompleted,
		UserID:      caller.UserID,
	}
	if err := s.Repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	if err := s.Search.Put(ctx, todo); err != nil {
		l.Warn("search_index_failed", "todo_id", todo.ID, "error", err)
	}
	if err := s.Events.Publish(ctx, "todo.created", itoa(todo.UserID), todo); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, caller Caller, id int64) (*models.Todo, error) {
	todo, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	if !caller.owns(todo) {
		return nil, ErrForbidden
	}
	return todo, nil
}

func (s *TodoService) ListAll(ctx context.Context) ([]models.Todo, error) {
	return s.Repo.List(ctx)
}

func (s *TodoService) ListMine(ctx context.Context, caller Caller) ([]models.Todo, error) {
	return s.Repo.ListByUser(ctx, caller.UserID)
}

func (s *TodoService) Update(ctx context.Context, caller Caller, id int64, p UpdateParams) error {
	l := logging.FromContext(ctx).With("svc", "todo.update")

	todo, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return mapErr(err)
	}
	if !caller.owns(todo) {
		return ErrForbidden
	}

	todo.Title = p.Title
	todo.Description = p.Description
	todo.IsCompleted = p.IsCompleted

	if err := s.Repo.Update(ctx, todo); err != nil {
		return err
	}

	if err := s.Search.Put(ctx, todo); err != nil {
		l.Warn("search_index_failed", "todo_id", todo.ID, "error", err)
	}
	if err := s.Events.Publish(ctx, "todo.updated", itoa(todo.UserID), todo); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}
	return nil
}

func (s *TodoService) Delete(ctx context.Context, caller Caller, id int64) error {
	l := logging.FromContext(ctx).With("svc", "todo.delete")

	todo, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return mapErr(err)
	}
	if !caller.owns(todo) {
		return ErrForbidden
	}

	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		return mapErr(err)
	}

	if err := s.Search.Remove(ctx, id); err != nil {
		l.Warn("search_remove_failed", "todo_id", id, "error", err)
	}
	if err := s.Events.Publish(ctx, "todo.deleted", itoa(todo.UserID), map[string]any{"id": id}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}
	return nil
}

func (s *TodoService) SearchMine(ctx context.Context, caller Caller, query string, from, size int) (int64, []models.Todo, error) {
	return s.Search.Search(ctx, caller.UserID, query, from, size)
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func mapErr(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

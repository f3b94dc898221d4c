package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/burakmt/todo-platform/services/todo/internal/models"
	"github.com/burakmt/todo-platform/services/todo/internal/repo"
)

func newTestService(t *testing.T) *TodoService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Todo{}))

	return &TodoService{Repo: &repo.GormRepo{DB: db}}
}

var (
	owner    = Caller{UserID: 1}
	stranger = Caller{UserID: 2}
	admin    = Caller{UserID: 3, IsAdmin: true}
)

func createTodo(t *testing.T, svc *TodoService, c Caller, title string) *models.Todo {
	t.Helper()

	todo, err := svc.Create(context.Background(), c, CreateParams{
		Title:       title,
		Description: "desc",
	})
	require.NoError(t, err)
	return todo
}

func TestTodoService_CreateAndGet(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	todo := createTodo(t, svc, owner, "buy milk")

	assert.Equal(t, owner.UserID, todo.UserID)
	assert.False(t, todo.IsCompleted)

	got, err := svc.Get(ctx, owner, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got.Title)

	_, err = svc.Get(ctx, owner, todo.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoService_OwnershipChecks(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	todo := createTodo(t, svc, owner, "buy milk")

	_, err := svc.Get(ctx, stranger, todo.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Update(ctx, stranger, todo.ID, UpdateParams{Title: "x"}), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, stranger, todo.ID), ErrForbidden)

	// Admins bypass ownership.
	_, err = svc.Get(ctx, admin, todo.ID)
	assert.NoError(t, err)
}

func TestTodoService_Update(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	todo := createTodo(t, svc, owner, "buy milk")

	err := svc.Update(ctx, owner, todo.ID, UpdateParams{
		Title:       "buy oat milk",
		Description: "the good kind",
		IsCompleted: true,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, owner, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", got.Title)
	assert.True(t, got.IsCompleted)

	assert.ErrorIs(t, svc.Update(ctx, owner, 9999, UpdateParams{Title: "x"}), ErrNotFound)
}

func TestTodoService_DeleteIsSoft(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	todo := createTodo(t, svc, owner, "buy milk")

	require.NoError(t, svc.Delete(ctx, owner, todo.ID))

	_, err := svc.Get(ctx, owner, todo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, owner, todo.ID), ErrNotFound)

	// The row survives with the flag set.
	var raw models.Todo
	require.NoError(t, svc.Repo.DB.Unscoped().Where("id = ?", todo.ID).First(&raw).Error)
	assert.True(t, raw.IsDeleted)
}

func TestTodoService_Lists(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	createTodo(t, svc, owner, "one")
	createTodo(t, svc, owner, "two")
	createTodo(t, svc, stranger, "theirs")

	mine, err := svc.ListMine(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTodoService_SearchDisabled(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	assert.False(t, svc.Search.Enabled())

	total, items, err := svc.SearchMine(context.Background(), owner, "milk", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}

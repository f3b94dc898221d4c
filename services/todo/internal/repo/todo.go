package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/burakmt/todo-platform/services/todo/internal/models"
)

var ErrNotFound = errors.New("todo not found")

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) Create(ctx context.Context, t *models.Todo) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	var todo models.Todo
	err := r.DB.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *GormRepo) List(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.DB.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("id").
		Find(&todos).Error
	return todos, err
}

func (r *GormRepo) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("id").
		Find(&todos).Error
	return todos, err
}

func (r *GormRepo) Update(ctx context.Context, t *models.Todo) error {
	return r.DB.WithContext(ctx).Save(t).Error
}

func (r *GormRepo) SoftDelete(ctx context.Context, id int64) error {
	res := r.DB.WithContext(ctx).Model(&models.Todo{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/burakmt/todo-platform/services/user/internal/models"
)

func (r *GormRepo) Create(ctx context.Context, u *models.User) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND is_deleted = ?", u.Email, false).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}

	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.one(ctx, "id = ?", id)
}

func (r *GormRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.one(ctx, "email = ?", email)
}

func (r *GormRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.one(ctx, "username = ?", username)
}

func (r *GormRepo) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	return r.one(ctx, "refresh_token = ?", token)
}

func (r *GormRepo) one(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).
		Where(query, arg).
		Where("is_deleted = ?", false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *GormRepo) Update(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

func (r *GormRepo) SoftDelete(ctx context.Context, id int64) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).
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

// SetRefreshToken overwrites the account's refresh-token slot
// unconditionally (login path).
func (r *GormRepo) SetRefreshToken(ctx context.Context, id int64, token string, expiry time.Time) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"refresh_token":        token,
			"refresh_token_expiry": expiry,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RotateRefreshToken swaps the slot only if it still holds oldToken.
// The conditional update makes concurrent rotations of the same token
// single-winner: the loser sees zero rows and gets ErrStaleRotation.
func (r *GormRepo) RotateRefreshToken(ctx context.Context, id int64, oldToken, newToken string, expiry time.Time) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND refresh_token = ? AND is_deleted = ?", id, oldToken, false).
		Updates(map[string]any{
			"refresh_token":        newToken,
			"refresh_token_expiry": expiry,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleRotation
	}
	return nil
}

// ClearRefreshToken revokes future refreshes. Clearing an already-empty
// slot is not an error.
func (r *GormRepo) ClearRefreshToken(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND refresh_token IS NOT NULL", id).
		Updates(map[string]any{
			"refresh_token":        nil,
			"refresh_token_expiry": nil,
		}).Error
}

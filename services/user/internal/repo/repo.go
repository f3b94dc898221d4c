package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrStaleRotation  = errors.New("refresh token already rotated")
)

type GormRepo struct {
	DB *gorm.DB
}

package models

import "time"

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User is the identity record. The refresh-token slot is single: a new
// login or refresh overwrites it, so one credential per account at a time.
// Email uniqueness holds among non-deleted accounts only, so the repo
// enforces it instead of a database unique index.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"not null"                 json:"username"`
	Email        string `gorm:"index;not null"           json:"email"`
	PasswordHash []byte `gorm:"not null"                 json:"-"`
	PasswordSalt []byte `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:User"    json:"role"`
	IsActive     bool   `gorm:"not null;default:true"    json:"is_active"`
	IsDeleted    bool   `gorm:"not null;default:false"   json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RefreshToken       *string    `gorm:"index" json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
}

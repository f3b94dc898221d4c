package models

import "time"

type Todo struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null"                 json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `gorm:"not null;default:false"   json:"isCompleted"`
	UserID      int64  `gorm:"index;not null"           json:"userId"`
	IsDeleted   bool   `gorm:"not null;default:false"   json:"-"`

	CreatedAt time.Time `json:"createdDate"`
	UpdatedAt time.Time `json:"updatedDate"`
}

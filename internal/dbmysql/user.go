package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserStatusActive  = "active"
	UserStatusDeleted = "deleted"
)

type User struct {
	UserID       string         `gorm:"primaryKey;column:user_id;size:36" json:"user_id"`
	Name         string         `gorm:"column:name;size:100;not null" json:"name"`
	Phone        string         `gorm:"column:phone;uniqueIndex;size:20;not null" json:"phone"`
	PasswordHash string         `gorm:"column:password_hash;size:255;not null" json:"-"`
	Status       string         `gorm:"column:status;type:enum('active','deleted');default:'active'" json:"status"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

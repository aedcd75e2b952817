package model

import "time"

// Account represents a principal that owns credentials and API definitions
type Account struct {
	Record
	Login          string    `gorm:"column:login;uniqueIndex;not null"`
	HashedPassword string    `gorm:"column:hashed_password;not null"`
	Active         bool      `gorm:"column:active"`
	Superuser      bool      `gorm:"column:superuser"`
	// comma-separated role names for simple RBAC (e.g. "admin,editor")
	Roles     string    `gorm:"column:roles"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Account) Kind() Kind { return KindAccount }

func (Account) TableName() string {
	return "accounts"
}

package model

import "time"

// Role names a set of permissions grantable to accounts
type Role struct {
	Record
	Name        string     `gorm:"column:name;uniqueIndex;not null"`
	Description string     `gorm:"column:description"`
	Permissions StringList `gorm:"column:permissions;type:text"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Role) Kind() Kind { return KindRole }

func (Role) TableName() string {
	return "roles"
}

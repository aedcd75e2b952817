package model

import "time"

// Permission grants an action on a resource
type Permission struct {
	Record
	Name        string    `gorm:"column:name;uniqueIndex;not null"`
	Resource    string    `gorm:"column:resource;not null"`
	Action      string    `gorm:"column:action;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Permission) Kind() Kind { return KindPermission }

func (Permission) TableName() string {
	return "permissions"
}

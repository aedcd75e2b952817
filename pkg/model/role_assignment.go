package model

import "time"

// RoleAssignment links an account to a role
type RoleAssignment struct {
	Record
	AccountID  int64     `gorm:"column:account_id;not null"`
	RoleID     int64     `gorm:"column:role_id;not null"`
	AssignedAt time.Time `gorm:"column:assigned_at;autoCreateTime"`
}

func (RoleAssignment) Kind() Kind { return KindRoleAssignment }

func (RoleAssignment) TableName() string {
	return "role_assignments"
}

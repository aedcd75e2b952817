package model

import "time"

// Secret is a named opaque value referenced by connector configs
type Secret struct {
	Record
	Name        string     `gorm:"column:name;uniqueIndex;not null"`
	Value       string     `gorm:"column:value;not null"`
	Description string     `gorm:"column:description"`
	Tags        StringList `gorm:"column:tags;type:text"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Secret) Kind() Kind { return KindSecret }

func (Secret) TableName() string {
	return "secrets"
}

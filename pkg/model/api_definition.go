package model

import "time"

// APIDefinition describes a published API. Name and version are unique as
// a pair.
type APIDefinition struct {
	Record
	Name        string    `gorm:"column:name;not null;uniqueIndex:idx_api_name_version"`
	Version     string    `gorm:"column:version;not null;uniqueIndex:idx_api_name_version"`
	Description string    `gorm:"column:description"`
	OwnerID     int64     `gorm:"column:owner_id"`
	Type        string    `gorm:"column:type"`
	Upstream    JSONMap   `gorm:"column:upstream;type:text"`
	Config      JSONMap   `gorm:"column:config;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (APIDefinition) Kind() Kind { return KindAPIDefinition }

func (APIDefinition) TableName() string {
	return "api_definitions"
}

package model

import "time"

// Connector is a backend integration attached to an API definition
type Connector struct {
	Record
	APIID     int64     `gorm:"column:api_id"`
	Name      string    `gorm:"column:name;not null"`
	Type      string    `gorm:"column:type;not null"`
	Config    JSONMap   `gorm:"column:config;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Connector) Kind() Kind { return KindConnector }

func (Connector) TableName() string {
	return "connectors"
}

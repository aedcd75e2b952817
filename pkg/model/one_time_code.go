package model

import "time"

// OneTimeCode is a short-lived login code delivered out of band
type OneTimeCode struct {
	Record
	Login     string    `gorm:"column:login;not null"`
	CodeHash  string    `gorm:"column:code_hash;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	Attempts  int64     `gorm:"column:attempts"`
	Consumed  bool      `gorm:"column:consumed"`
	// delivery channel, e.g. "email" or "sms"
	Transport string `gorm:"column:transport"`
}

func (OneTimeCode) Kind() Kind { return KindOneTimeCode }

func (OneTimeCode) TableName() string {
	return "one_time_codes"
}

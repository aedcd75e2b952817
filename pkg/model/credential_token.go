package model

import "time"

// CredentialToken is a refresh token issued to an account
type CredentialToken struct {
	Record
	Token     string    `gorm:"column:token;uniqueIndex;not null"`
	AccountID int64     `gorm:"column:account_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	Revoked   bool      `gorm:"column:revoked"`
}

func (CredentialToken) Kind() Kind { return KindCredentialToken }

func (CredentialToken) TableName() string {
	return "credential_tokens"
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist holds tokens invalidated by logout until they would have
// expired anyway; a scheduler purges old rows.
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;unique" json:"token"`
	ExpiredAt time.Time      `json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}

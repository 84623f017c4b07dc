package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminAccountModel replaces the source system's hardcoded credential pairs:
// same two-tier role contract, but bcrypt-hashed and stored per account.
type AdminAccountModel struct {
	AdminAccountID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_account_id" json:"admin_account_id"`
	AdminAccountEmail        string         `gorm:"size:255;not null;uniqueIndex;column:admin_account_email" json:"admin_account_email"`
	AdminAccountPasswordHash string         `gorm:"type:text;not null;column:admin_account_password_hash" json:"-"`
	AdminAccountRole         string         `gorm:"size:32;not null;column:admin_account_role" json:"admin_account_role"`
	AdminAccountCreatedAt    time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:admin_account_created_at" json:"admin_account_created_at"`
	AdminAccountUpdatedAt    *time.Time     `gorm:"column:admin_account_updated_at" json:"admin_account_updated_at,omitempty"`
	AdminAccountDeletedAt    gorm.DeletedAt `gorm:"column:admin_account_deleted_at;index" json:"-"`
}

func (AdminAccountModel) TableName() string { return "admin_accounts" }

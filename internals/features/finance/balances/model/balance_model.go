package model

import (
	"time"

	"github.com/google/uuid"
)

// BalanceBroughtForwardModel is the manually entered opening balance carried
// from the prior year's close. One row per year.
type BalanceBroughtForwardModel struct {
	BalanceID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:balance_id" json:"balance_id"`
	BalanceYear      int        `gorm:"not null;uniqueIndex;column:balance_year" json:"balance_year"`
	BalanceAmount    float64    `gorm:"type:numeric(12,2);not null;column:balance_amount" json:"balance_amount"`
	BalanceCreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;column:balance_created_at" json:"balance_created_at"`
	BalanceUpdatedAt *time.Time `gorm:"column:balance_updated_at" json:"balance_updated_at,omitempty"`
}

func (BalanceBroughtForwardModel) TableName() string { return "balances_brought_forward" }

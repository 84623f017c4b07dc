package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Expenses are department-level, never attributed to a member.
type ExpenseModel struct {
	ExpenseID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:expense_id" json:"expense_id"`
	ExpenseAmount      float64        `gorm:"type:numeric(12,2);not null;column:expense_amount" json:"expense_amount"`
	ExpenseDescription string         `gorm:"type:text;not null;column:expense_description" json:"expense_description"`
	ExpenseDate        datatypes.Date `gorm:"not null;column:expense_date" json:"-"`
	ExpenseCreatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:expense_created_at" json:"expense_created_at"`
	ExpenseUpdatedAt   *time.Time     `gorm:"column:expense_updated_at" json:"expense_updated_at,omitempty"`
}

func (ExpenseModel) TableName() string { return "expenses" }

package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberPaymentModel is one member's dues status for one month. The unique
// index on (member, year, month) makes every write an upsert: the same period
// can never hold two rows.
type MemberPaymentModel struct {
	MemberPaymentID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_payment_id" json:"member_payment_id"`
	MemberPaymentMemberID uuid.UUID  `gorm:"type:uuid;not null;column:member_payment_member_id;uniqueIndex:uq_member_payment_period" json:"member_payment_member_id"`
	MemberPaymentYear     int        `gorm:"not null;column:member_payment_year;uniqueIndex:uq_member_payment_period" json:"member_payment_year"`
	MemberPaymentMonth    int        `gorm:"not null;column:member_payment_month;uniqueIndex:uq_member_payment_period;check:member_payment_month >= 0 AND member_payment_month <= 11" json:"member_payment_month"`
	MemberPaymentAmount   float64    `gorm:"type:numeric(12,2);not null;default:500;column:member_payment_amount" json:"member_payment_amount"`
	MemberPaymentPaid     bool       `gorm:"not null;default:false;column:member_payment_paid" json:"member_payment_paid"`
	MemberPaymentPaidAt   *time.Time `gorm:"type:date;column:member_payment_paid_at" json:"member_payment_paid_at,omitempty"`
	MemberPaymentCreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;column:member_payment_created_at" json:"member_payment_created_at"`
	MemberPaymentUpdatedAt *time.Time `gorm:"column:member_payment_updated_at" json:"member_payment_updated_at,omitempty"`
}

func (MemberPaymentModel) TableName() string { return "member_payments" }

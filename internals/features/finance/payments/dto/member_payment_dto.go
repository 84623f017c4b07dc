package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "gerejaku_backend/internals/features/finance/payments/model"
)

/* ===================== REQUESTS ===================== */

// Upsert writes one (member, year, month) cell. The unique index turns a
// second write for the same triple into an overwrite, never a duplicate.
type UpsertMemberPaymentRequest struct {
	MemberPaymentMemberID uuid.UUID `json:"member_payment_member_id" validate:"required"`
	MemberPaymentYear     int       `json:"member_payment_year" validate:"required,min=1900,max=3000"`
	MemberPaymentMonth    int       `json:"member_payment_month" validate:"min=0,max=11"`
	MemberPaymentAmount   *float64  `json:"member_payment_amount" validate:"omitempty,gt=0"`
	MemberPaymentPaid     bool      `json:"member_payment_paid"`
	MemberPaymentPaidAt   *string   `json:"member_payment_paid_at" validate:"omitempty,datetime=2006-01-02"`
}

func (r UpsertMemberPaymentRequest) ToModel(defaultAmount float64) *model.MemberPaymentModel {
	amount := defaultAmount
	if r.MemberPaymentAmount != nil {
		amount = *r.MemberPaymentAmount
	}
	m := &model.MemberPaymentModel{
		MemberPaymentMemberID: r.MemberPaymentMemberID,
		MemberPaymentYear:     r.MemberPaymentYear,
		MemberPaymentMonth:    r.MemberPaymentMonth,
		MemberPaymentAmount:   amount,
		MemberPaymentPaid:     r.MemberPaymentPaid,
	}
	if r.MemberPaymentPaidAt != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.MemberPaymentPaidAt)); err == nil {
			m.MemberPaymentPaidAt = &d
		}
	}
	return m
}

type ToggleMemberPaymentRequest struct {
	MemberPaymentMemberID uuid.UUID `json:"member_payment_member_id" validate:"required"`
	MemberPaymentYear     int       `json:"member_payment_year" validate:"required,min=1900,max=3000"`
	MemberPaymentMonth    int       `json:"member_payment_month" validate:"min=0,max=11"`
}

/* ===================== RESPONSES ===================== */

type MemberPaymentResponse struct {
	MemberPaymentID       uuid.UUID  `json:"member_payment_id"`
	MemberPaymentMemberID uuid.UUID  `json:"member_payment_member_id"`
	MemberPaymentYear     int        `json:"member_payment_year"`
	MemberPaymentMonth    int        `json:"member_payment_month"`
	MemberPaymentAmount   float64    `json:"member_payment_amount"`
	MemberPaymentPaid     bool       `json:"member_payment_paid"`
	MemberPaymentPaidAt   *string    `json:"member_payment_paid_at,omitempty"`
	MemberPaymentCreatedAt time.Time `json:"member_payment_created_at"`
}

func NewMemberPaymentResponse(m *model.MemberPaymentModel) *MemberPaymentResponse {
	if m == nil {
		return nil
	}
	resp := &MemberPaymentResponse{
		MemberPaymentID:        m.MemberPaymentID,
		MemberPaymentMemberID:  m.MemberPaymentMemberID,
		MemberPaymentYear:      m.MemberPaymentYear,
		MemberPaymentMonth:     m.MemberPaymentMonth,
		MemberPaymentAmount:    m.MemberPaymentAmount,
		MemberPaymentPaid:      m.MemberPaymentPaid,
		MemberPaymentCreatedAt: m.MemberPaymentCreatedAt,
	}
	if m.MemberPaymentPaidAt != nil {
		s := m.MemberPaymentPaidAt.Format("2006-01-02")
		resp.MemberPaymentPaidAt = &s
	}
	return resp
}

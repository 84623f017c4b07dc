package service

import (
	"time"

	"github.com/google/uuid"

	model "gerejaku_backend/internals/features/finance/payments/model"
)

// MonthStatus is one slot of the per-member, per-year dues vector.
type MonthStatus struct {
	Month     int        `json:"month"` // 0..11
	Paid      bool       `json:"paid"`
	Amount    float64    `json:"amount"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	PaymentID *uuid.UUID `json:"member_payment_id,omitempty"`
}

// YearVector projects the flat payment rows onto the 12-slot vector the
// member screen renders. Payments are sparse: a month without a row is
// unpaid at the default due, no placeholder row is ever created.
func YearVector(payments []model.MemberPaymentModel, memberID uuid.UUID, year int, defaultAmount float64) [12]MonthStatus {
	var vector [12]MonthStatus
	for m := 0; m < 12; m++ {
		vector[m] = MonthStatus{Month: m, Paid: false, Amount: defaultAmount}
	}
	for i := range payments {
		p := &payments[i]
		if p.MemberPaymentMemberID != memberID || p.MemberPaymentYear != year {
			continue
		}
		if p.MemberPaymentMonth < 0 || p.MemberPaymentMonth > 11 {
			continue
		}
		id := p.MemberPaymentID
		vector[p.MemberPaymentMonth] = MonthStatus{
			Month:     p.MemberPaymentMonth,
			Paid:      p.MemberPaymentPaid,
			Amount:    p.MemberPaymentAmount,
			PaidAt:    p.MemberPaymentPaidAt,
			PaymentID: &id,
		}
	}
	return vector
}

// ApplyToggle computes the row an upsert should write when an admin clicks a
// month cell. No existing row means the click marks the month paid; an
// existing row flips its flag. Applying it twice restores the original state.
func ApplyToggle(existing *model.MemberPaymentModel, memberID uuid.UUID, year, month int, defaultAmount float64, now time.Time) model.MemberPaymentModel {
	if existing == nil {
		paidAt := now
		return model.MemberPaymentModel{
			MemberPaymentMemberID: memberID,
			MemberPaymentYear:     year,
			MemberPaymentMonth:    month,
			MemberPaymentAmount:   defaultAmount,
			MemberPaymentPaid:     true,
			MemberPaymentPaidAt:   &paidAt,
		}
	}

	next := *existing
	next.MemberPaymentPaid = !existing.MemberPaymentPaid
	if next.MemberPaymentPaid {
		paidAt := now
		next.MemberPaymentPaidAt = &paidAt
	} else {
		next.MemberPaymentPaidAt = nil
	}
	updated := now
	next.MemberPaymentUpdatedAt = &updated
	return next
}

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "gerejaku_backend/internals/features/finance/payments/model"
)

func TestYearVectorSparsePayments(t *testing.T) {
	memberID := uuid.New()
	otherID := uuid.New()

	payments := []model.MemberPaymentModel{
		{MemberPaymentID: uuid.New(), MemberPaymentMemberID: memberID, MemberPaymentYear: 2025, MemberPaymentMonth: 0, MemberPaymentAmount: 500, MemberPaymentPaid: true},
		{MemberPaymentID: uuid.New(), MemberPaymentMemberID: memberID, MemberPaymentYear: 2025, MemberPaymentMonth: 5, MemberPaymentAmount: 750, MemberPaymentPaid: false},
		// different year and different member must not leak in
		{MemberPaymentID: uuid.New(), MemberPaymentMemberID: memberID, MemberPaymentYear: 2024, MemberPaymentMonth: 3, MemberPaymentAmount: 500, MemberPaymentPaid: true},
		{MemberPaymentID: uuid.New(), MemberPaymentMemberID: otherID, MemberPaymentYear: 2025, MemberPaymentMonth: 1, MemberPaymentAmount: 500, MemberPaymentPaid: true},
	}

	vector := YearVector(payments, memberID, 2025, 500)

	if !vector[0].Paid || vector[0].Amount != 500 {
		t.Errorf("January should be paid at 500, got %+v", vector[0])
	}
	if vector[5].Paid {
		t.Errorf("June has an explicit unpaid row, got %+v", vector[5])
	}
	if vector[5].Amount != 750 {
		t.Errorf("June should keep its overridden amount 750, got %v", vector[5].Amount)
	}
	if vector[3].Paid || vector[3].PaymentID != nil {
		t.Errorf("April 2025 has no row and must be a default slot, got %+v", vector[3])
	}
	if vector[1].Paid {
		t.Errorf("another member's payment leaked into February: %+v", vector[1])
	}
	for m, slot := range vector {
		if slot.Month != m {
			t.Fatalf("slot %d carries month %d", m, slot.Month)
		}
	}
}

func TestYearVectorEmptyIsAllUnpaidDefaults(t *testing.T) {
	vector := YearVector(nil, uuid.New(), 2025, 500)
	for _, slot := range vector {
		if slot.Paid || slot.Amount != 500 || slot.PaymentID != nil {
			t.Fatalf("expected default unpaid slot, got %+v", slot)
		}
	}
}

func TestApplyToggleTwiceRestoresOriginal(t *testing.T) {
	memberID := uuid.New()
	now := time.Now()

	tests := []struct {
		name     string
		existing *model.MemberPaymentModel
	}{
		{"no row yet", nil},
		{"existing paid row", &model.MemberPaymentModel{
			MemberPaymentID:       uuid.New(),
			MemberPaymentMemberID: memberID,
			MemberPaymentYear:     2025,
			MemberPaymentMonth:    4,
			MemberPaymentAmount:   500,
			MemberPaymentPaid:     true,
		}},
		{"existing unpaid row", &model.MemberPaymentModel{
			MemberPaymentID:       uuid.New(),
			MemberPaymentMemberID: memberID,
			MemberPaymentYear:     2025,
			MemberPaymentMonth:    4,
			MemberPaymentAmount:   500,
			MemberPaymentPaid:     false,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalPaid := false
			if tt.existing != nil {
				originalPaid = tt.existing.MemberPaymentPaid
			}

			first := ApplyToggle(tt.existing, memberID, 2025, 4, 500, now)
			if first.MemberPaymentPaid == originalPaid {
				t.Fatal("first toggle did not flip the paid flag")
			}
			second := ApplyToggle(&first, memberID, 2025, 4, 500, now)
			if second.MemberPaymentPaid != originalPaid {
				t.Fatal("second toggle did not restore the original paid flag")
			}
		})
	}
}

func TestApplyToggleSetsAndClearsPaidAt(t *testing.T) {
	memberID := uuid.New()
	now := time.Now()

	created := ApplyToggle(nil, memberID, 2025, 7, 500, now)
	if !created.MemberPaymentPaid || created.MemberPaymentPaidAt == nil {
		t.Fatalf("new toggle must mark paid with a date, got %+v", created)
	}
	if created.MemberPaymentAmount != 500 {
		t.Fatalf("new row must carry the default due, got %v", created.MemberPaymentAmount)
	}

	reverted := ApplyToggle(&created, memberID, 2025, 7, 500, now)
	if reverted.MemberPaymentPaid || reverted.MemberPaymentPaidAt != nil {
		t.Fatalf("untoggle must clear paid and paid_at, got %+v", reverted)
	}
}

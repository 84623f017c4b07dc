package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "gerejaku_backend/internals/features/finance/members/model"
	paySvc "gerejaku_backend/internals/features/finance/payments/service"
)

/* ===================== REQUESTS ===================== */

type CreateMemberRequest struct {
	MemberName string `json:"member_name" validate:"required,min=2,max=255"`
}

func (r CreateMemberRequest) ToModel() *model.MemberModel {
	return &model.MemberModel{
		MemberName: strings.TrimSpace(r.MemberName),
	}
}

type UpdateMemberRequest struct {
	MemberName *string `json:"member_name" validate:"omitempty,min=2,max=255"`
}

func (r *UpdateMemberRequest) ApplyToModel(m *model.MemberModel) {
	if r.MemberName != nil {
		m.MemberName = strings.TrimSpace(*r.MemberName)
	}
	now := time.Now()
	m.MemberUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type MemberResponse struct {
	MemberID        uuid.UUID  `json:"member_id"`
	MemberName      string     `json:"member_name"`
	MemberCreatedAt time.Time  `json:"member_created_at"`
	MemberUpdatedAt *time.Time `json:"member_updated_at,omitempty"`
}

func NewMemberResponse(m *model.MemberModel) *MemberResponse {
	if m == nil {
		return nil
	}
	return &MemberResponse{
		MemberID:        m.MemberID,
		MemberName:      m.MemberName,
		MemberCreatedAt: m.MemberCreatedAt,
		MemberUpdatedAt: m.MemberUpdatedAt,
	}
}

// MemberDuesResponse carries the reconstructed 12-slot dues vector for one
// member and year.
type MemberDuesResponse struct {
	MemberID uuid.UUID            `json:"member_id"`
	Year     int                  `json:"year"`
	Months   [12]paySvc.MonthStatus `json:"months"`
}

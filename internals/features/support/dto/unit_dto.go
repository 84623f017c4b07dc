package dto

import (
	model "gerejaku_backend/internals/features/support/model"
)

/* ===================== REQUESTS ===================== */

type UnitMemberRequest struct {
	UnitMemberName  string `json:"unit_member_name" validate:"required,min=2,max=255"`
	UnitMemberPhone string `json:"unit_member_phone" validate:"omitempty,max=32"`
	UnitMemberRole  string `json:"unit_member_role" validate:"required,oneof=head assistant"`
}

type CreateUnitRequest struct {
	UnitName        string              `json:"unit_name" validate:"required,min=2,max=255"`
	UnitDescription string              `json:"unit_description" validate:"omitempty,max=2000"`
	UnitMembers     []UnitMemberRequest `json:"unit_members" validate:"omitempty,dive"`
}

type UpdateUnitRequest struct {
	UnitName        *string             `json:"unit_name" validate:"omitempty,min=2,max=255"`
	UnitDescription *string             `json:"unit_description" validate:"omitempty,max=2000"`
	UnitMembers     []UnitMemberRequest `json:"unit_members" validate:"omitempty,dive"`
}

func ToUnitMembers(reqs []UnitMemberRequest) []model.UnitMember {
	if reqs == nil {
		return nil
	}
	out := make([]model.UnitMember, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, model.UnitMember{
			UnitMemberName:  r.UnitMemberName,
			UnitMemberPhone: r.UnitMemberPhone,
			UnitMemberRole:  r.UnitMemberRole,
		})
	}
	return out
}

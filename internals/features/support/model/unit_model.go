package model

import (
	"time"

	"github.com/google/uuid"
)

// Unit member roles.
const (
	UnitRoleHead      = "head"
	UnitRoleAssistant = "assistant"
)

func IsValidUnitRole(r string) bool {
	return r == UnitRoleHead || r == UnitRoleAssistant
}

type UnitMember struct {
	UnitMemberName  string `json:"unit_member_name"`
	UnitMemberPhone string `json:"unit_member_phone"`
	UnitMemberRole  string `json:"unit_member_role"`
}

// Unit is a support-directory entry. Units live in process memory only and
// do not survive a restart.
type Unit struct {
	UnitID          uuid.UUID    `json:"unit_id"`
	UnitName        string       `json:"unit_name"`
	UnitDescription string       `json:"unit_description,omitempty"`
	UnitMembers     []UnitMember `json:"unit_members"`
	UnitCreatedAt   time.Time    `json:"unit_created_at"`
	UnitUpdatedAt   *time.Time   `json:"unit_updated_at,omitempty"`
}

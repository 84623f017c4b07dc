package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`
	MemberName      string         `gorm:"size:255;not null;column:member_name" json:"member_name"`
	MemberCreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:member_created_at" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"-"`
}

func (MemberModel) TableName() string { return "members" }

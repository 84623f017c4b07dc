package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Priority values stored in announcement_priority.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type AnnouncementModel struct {
	AnnouncementID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`
	AnnouncementTitle          string         `gorm:"type:varchar(255);not null;column:announcement_title" json:"announcement_title"`
	AnnouncementBody           string         `gorm:"type:text;not null;column:announcement_body" json:"announcement_body"`
	AnnouncementPriority       string         `gorm:"type:varchar(10);not null;default:'medium';column:announcement_priority" json:"announcement_priority"`
	AnnouncementPinned         bool           `gorm:"not null;default:false;column:announcement_pinned" json:"announcement_pinned"`
	AnnouncementSenderName     string         `gorm:"type:varchar(255);column:announcement_sender_name" json:"announcement_sender_name,omitempty"`
	AnnouncementVenue          string         `gorm:"type:varchar(255);column:announcement_venue" json:"announcement_venue,omitempty"`
	AnnouncementEventDate      *time.Time     `gorm:"type:date;column:announcement_event_date" json:"announcement_event_date,omitempty"`
	AnnouncementAttachmentURLs pq.StringArray `gorm:"type:text[];column:announcement_attachment_urls" json:"announcement_attachment_urls"`
	AnnouncementCreatedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:announcement_created_at" json:"announcement_created_at"`
	AnnouncementUpdatedAt      *time.Time     `gorm:"column:announcement_updated_at" json:"announcement_updated_at,omitempty"`
	AnnouncementDeletedAt      gorm.DeletedAt `gorm:"index;column:announcement_deleted_at" json:"-"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

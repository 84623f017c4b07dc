package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Contributor is free text on purpose: contributions also come from guests
// who are not registered members. No uniqueness per contributor per period.
type ContributionModel struct {
	ContributionID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contribution_id" json:"contribution_id"`
	ContributionContributorName string         `gorm:"size:255;not null;column:contribution_contributor_name" json:"contribution_contributor_name"`
	ContributionAmount          float64        `gorm:"type:numeric(12,2);not null;column:contribution_amount" json:"contribution_amount"`
	ContributionDescription     string         `gorm:"type:text;column:contribution_description" json:"contribution_description"`
	ContributionDate            datatypes.Date `gorm:"not null;column:contribution_date" json:"-"`
	ContributionCreatedAt       time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:contribution_created_at" json:"contribution_created_at"`
	ContributionUpdatedAt       *time.Time     `gorm:"column:contribution_updated_at" json:"contribution_updated_at,omitempty"`
}

func (ContributionModel) TableName() string { return "contributions" }

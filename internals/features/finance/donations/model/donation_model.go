package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DonationModel struct {
	DonationID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:donation_id" json:"donation_id"`
	DonationDonorName   string         `gorm:"size:255;not null;column:donation_donor_name" json:"donation_donor_name"`
	DonationAmount      float64        `gorm:"type:numeric(12,2);not null;column:donation_amount" json:"donation_amount"`
	DonationDescription string         `gorm:"type:text;column:donation_description" json:"donation_description"`
	DonationDate        datatypes.Date `gorm:"not null;column:donation_date" json:"-"`
	DonationCreatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;column:donation_created_at" json:"donation_created_at"`
	DonationUpdatedAt   *time.Time     `gorm:"column:donation_updated_at" json:"donation_updated_at,omitempty"`
}

func (DonationModel) TableName() string { return "donations" }

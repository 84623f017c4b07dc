package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "gerejaku_backend/internals/features/finance/donations/model"
)

/* ===================== REQUESTS ===================== */

type CreateDonationRequest struct {
	DonationDonorName   string  `json:"donation_donor_name" validate:"required,min=2,max=255"`
	DonationAmount      float64 `json:"donation_amount" validate:"required,gt=0"`
	DonationDescription string  `json:"donation_description" validate:"omitempty,max=2000"`
	DonationDate        string  `json:"donation_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateDonationRequest) ToModel() *model.DonationModel {
	d, _ := time.Parse("2006-01-02", strings.TrimSpace(r.DonationDate))
	return &model.DonationModel{
		DonationDonorName:   strings.TrimSpace(r.DonationDonorName),
		DonationAmount:      r.DonationAmount,
		DonationDescription: strings.TrimSpace(r.DonationDescription),
		DonationDate:        datatypes.Date(d),
	}
}

type UpdateDonationRequest struct {
	DonationDonorName   *string  `json:"donation_donor_name" validate:"omitempty,min=2,max=255"`
	DonationAmount      *float64 `json:"donation_amount" validate:"omitempty,gt=0"`
	DonationDescription *string  `json:"donation_description" validate:"omitempty,max=2000"`
	DonationDate        *string  `json:"donation_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateDonationRequest) ApplyToModel(m *model.DonationModel) {
	if r.DonationDonorName != nil {
		m.DonationDonorName = strings.TrimSpace(*r.DonationDonorName)
	}
	if r.DonationAmount != nil {
		m.DonationAmount = *r.DonationAmount
	}
	if r.DonationDescription != nil {
		m.DonationDescription = strings.TrimSpace(*r.DonationDescription)
	}
	if r.DonationDate != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.DonationDate)); err == nil {
			m.DonationDate = datatypes.Date(d)
		}
	}
	now := time.Now()
	m.DonationUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type DonationResponse struct {
	DonationID          uuid.UUID  `json:"donation_id"`
	DonationDonorName   string     `json:"donation_donor_name"`
	DonationAmount      float64    `json:"donation_amount"`
	DonationDescription string     `json:"donation_description,omitempty"`
	DonationDate        string     `json:"donation_date"`
	DonationCreatedAt   time.Time  `json:"donation_created_at"`
	DonationUpdatedAt   *time.Time `json:"donation_updated_at,omitempty"`
}

func NewDonationResponse(m *model.DonationModel) *DonationResponse {
	if m == nil {
		return nil
	}
	return &DonationResponse{
		DonationID:          m.DonationID,
		DonationDonorName:   m.DonationDonorName,
		DonationAmount:      m.DonationAmount,
		DonationDescription: m.DonationDescription,
		DonationDate:        time.Time(m.DonationDate).Format("2006-01-02"),
		DonationCreatedAt:   m.DonationCreatedAt,
		DonationUpdatedAt:   m.DonationUpdatedAt,
	}
}

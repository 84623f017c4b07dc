package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "gerejaku_backend/internals/features/finance/contributions/model"
)

/* ===================== REQUESTS ===================== */

type CreateContributionRequest struct {
	ContributionContributorName string  `json:"contribution_contributor_name" validate:"required,min=2,max=255"`
	ContributionAmount          float64 `json:"contribution_amount" validate:"required,gt=0"`
	ContributionDescription     string  `json:"contribution_description" validate:"omitempty,max=2000"`
	ContributionDate            string  `json:"contribution_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateContributionRequest) ToModel() *model.ContributionModel {
	d, _ := time.Parse("2006-01-02", strings.TrimSpace(r.ContributionDate))
	return &model.ContributionModel{
		ContributionContributorName: strings.TrimSpace(r.ContributionContributorName),
		ContributionAmount:          r.ContributionAmount,
		ContributionDescription:     strings.TrimSpace(r.ContributionDescription),
		ContributionDate:            datatypes.Date(d),
	}
}

type UpdateContributionRequest struct {
	ContributionContributorName *string  `json:"contribution_contributor_name" validate:"omitempty,min=2,max=255"`
	ContributionAmount          *float64 `json:"contribution_amount" validate:"omitempty,gt=0"`
	ContributionDescription     *string  `json:"contribution_description" validate:"omitempty,max=2000"`
	ContributionDate            *string  `json:"contribution_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateContributionRequest) ApplyToModel(m *model.ContributionModel) {
	if r.ContributionContributorName != nil {
		m.ContributionContributorName = strings.TrimSpace(*r.ContributionContributorName)
	}
	if r.ContributionAmount != nil {
		m.ContributionAmount = *r.ContributionAmount
	}
	if r.ContributionDescription != nil {
		m.ContributionDescription = strings.TrimSpace(*r.ContributionDescription)
	}
	if r.ContributionDate != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.ContributionDate)); err == nil {
			m.ContributionDate = datatypes.Date(d)
		}
	}
	now := time.Now()
	m.ContributionUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type ContributionResponse struct {
	ContributionID              uuid.UUID  `json:"contribution_id"`
	ContributionContributorName string     `json:"contribution_contributor_name"`
	ContributionAmount          float64    `json:"contribution_amount"`
	ContributionDescription     string     `json:"contribution_description,omitempty"`
	ContributionDate            string     `json:"contribution_date"`
	ContributionCreatedAt       time.Time  `json:"contribution_created_at"`
	ContributionUpdatedAt       *time.Time `json:"contribution_updated_at,omitempty"`
}

func NewContributionResponse(m *model.ContributionModel) *ContributionResponse {
	if m == nil {
		return nil
	}
	return &ContributionResponse{
		ContributionID:              m.ContributionID,
		ContributionContributorName: m.ContributionContributorName,
		ContributionAmount:          m.ContributionAmount,
		ContributionDescription:     m.ContributionDescription,
		ContributionDate:            time.Time(m.ContributionDate).Format("2006-01-02"),
		ContributionCreatedAt:       m.ContributionCreatedAt,
		ContributionUpdatedAt:       m.ContributionUpdatedAt,
	}
}

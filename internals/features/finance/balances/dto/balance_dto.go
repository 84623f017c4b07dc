package dto

import (
	"time"

	"github.com/google/uuid"

	model "gerejaku_backend/internals/features/finance/balances/model"
)

type UpsertBalanceRequest struct {
	BalanceYear   int     `json:"balance_year" validate:"required,gte=2000,lte=2200"`
	BalanceAmount float64 `json:"balance_amount" validate:"required"`
}

func (r UpsertBalanceRequest) ToModel() *model.BalanceBroughtForwardModel {
	return &model.BalanceBroughtForwardModel{
		BalanceYear:   r.BalanceYear,
		BalanceAmount: r.BalanceAmount,
	}
}

type BalanceResponse struct {
	BalanceID        uuid.UUID  `json:"balance_id"`
	BalanceYear      int        `json:"balance_year"`
	BalanceAmount    float64    `json:"balance_amount"`
	BalanceCreatedAt time.Time  `json:"balance_created_at"`
	BalanceUpdatedAt *time.Time `json:"balance_updated_at,omitempty"`
}

func NewBalanceResponse(m *model.BalanceBroughtForwardModel) *BalanceResponse {
	if m == nil {
		return nil
	}
	return &BalanceResponse{
		BalanceID:        m.BalanceID,
		BalanceYear:      m.BalanceYear,
		BalanceAmount:    m.BalanceAmount,
		BalanceCreatedAt: m.BalanceCreatedAt,
		BalanceUpdatedAt: m.BalanceUpdatedAt,
	}
}

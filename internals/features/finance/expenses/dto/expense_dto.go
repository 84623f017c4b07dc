package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "gerejaku_backend/internals/features/finance/expenses/model"
)

/* ===================== REQUESTS ===================== */

type CreateExpenseRequest struct {
	ExpenseAmount      float64 `json:"expense_amount" validate:"required,gt=0"`
	ExpenseDescription string  `json:"expense_description" validate:"required,min=2,max=2000"`
	ExpenseDate        string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateExpenseRequest) ToModel() *model.ExpenseModel {
	d, _ := time.Parse("2006-01-02", strings.TrimSpace(r.ExpenseDate))
	return &model.ExpenseModel{
		ExpenseAmount:      r.ExpenseAmount,
		ExpenseDescription: strings.TrimSpace(r.ExpenseDescription),
		ExpenseDate:        datatypes.Date(d),
	}
}

type UpdateExpenseRequest struct {
	ExpenseAmount      *float64 `json:"expense_amount" validate:"omitempty,gt=0"`
	ExpenseDescription *string  `json:"expense_description" validate:"omitempty,min=2,max=2000"`
	ExpenseDate        *string  `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateExpenseRequest) ApplyToModel(m *model.ExpenseModel) {
	if r.ExpenseAmount != nil {
		m.ExpenseAmount = *r.ExpenseAmount
	}
	if r.ExpenseDescription != nil {
		m.ExpenseDescription = strings.TrimSpace(*r.ExpenseDescription)
	}
	if r.ExpenseDate != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.ExpenseDate)); err == nil {
			m.ExpenseDate = datatypes.Date(d)
		}
	}
	now := time.Now()
	m.ExpenseUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type ExpenseResponse struct {
	ExpenseID          uuid.UUID  `json:"expense_id"`
	ExpenseAmount      float64    `json:"expense_amount"`
	ExpenseDescription string     `json:"expense_description"`
	ExpenseDate        string     `json:"expense_date"`
	ExpenseCreatedAt   time.Time  `json:"expense_created_at"`
	ExpenseUpdatedAt   *time.Time `json:"expense_updated_at,omitempty"`
}

func NewExpenseResponse(m *model.ExpenseModel) *ExpenseResponse {
	if m == nil {
		return nil
	}
	return &ExpenseResponse{
		ExpenseID:          m.ExpenseID,
		ExpenseAmount:      m.ExpenseAmount,
		ExpenseDescription: m.ExpenseDescription,
		ExpenseDate:        time.Time(m.ExpenseDate).Format("2006-01-02"),
		ExpenseCreatedAt:   m.ExpenseCreatedAt,
		ExpenseUpdatedAt:   m.ExpenseUpdatedAt,
	}
}

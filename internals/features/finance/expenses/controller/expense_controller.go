package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	expDTO "gerejaku_backend/internals/features/finance/expenses/dto"
	expModel "gerejaku_backend/internals/features/finance/expenses/model"
	helper "gerejaku_backend/internals/helpers"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

var validateExpense = validator.New()

func (h *ExpenseController) findExpense(id uuid.UUID) (*expModel.ExpenseModel, error) {
	var m expModel.ExpenseModel
	if err := h.DB.Where("expense_id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch expense")
	}
	return &m, nil
}

/* ================= Handlers ================= */

// POST /api/a/finance/expenses
func (h *ExpenseController) Create(c *fiber.Ctx) error {
	var req expDTO.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateExpense.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expense")
	}
	return helper.JsonCreated(c, "Expense recorded", expDTO.NewExpenseResponse(m))
}

// GET /api/finance/expenses?year=&month=
func (h *ExpenseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&expModel.ExpenseModel{})
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
		}
		if monthStr := c.Query("month"); monthStr != "" {
			month, err := strconv.Atoi(monthStr)
			if err != nil || month < 0 || month > 11 {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid month")
			}
			from, to := helper.MonthRange(year, month)
			tx = tx.Where("expense_date >= ? AND expense_date < ?", from, to)
		} else {
			from, to := helper.YearRange(year)
			tx = tx.Where("expense_date >= ? AND expense_date < ?", from, to)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count expenses")
	}

	var rows []expModel.ExpenseModel
	if err := tx.
		Order("expense_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch expenses")
	}

	resp := make([]*expDTO.ExpenseResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, expDTO.NewExpenseResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/finance/expenses/:id
func (h *ExpenseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findExpense(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", expDTO.NewExpenseResponse(m))
}

// PUT /api/a/finance/expenses/:id
func (h *ExpenseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	existing, err := h.findExpense(id)
	if err != nil {
		return err
	}

	var req expDTO.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateExpense.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(existing)
	if err := h.DB.Save(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense")
	}
	return helper.JsonUpdated(c, "Expense updated", expDTO.NewExpenseResponse(existing))
}

// DELETE /api/a/finance/expenses/:id
func (h *ExpenseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	res := h.DB.Where("expense_id = ?", id).Delete(&expModel.ExpenseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete expense")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
	}
	return helper.JsonDeleted(c, "Expense deleted", fiber.Map{"expense_id": id})
}

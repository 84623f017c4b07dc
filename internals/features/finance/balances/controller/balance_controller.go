package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	balDTO "gerejaku_backend/internals/features/finance/balances/dto"
	balModel "gerejaku_backend/internals/features/finance/balances/model"
	helper "gerejaku_backend/internals/helpers"
)

type BalanceController struct {
	DB *gorm.DB
}

func NewBalanceController(db *gorm.DB) *BalanceController {
	return &BalanceController{DB: db}
}

var validateBalance = validator.New()

// One opening balance per year, last writer wins.
var onConflictYear = clause.OnConflict{
	Columns:   []clause.Column{{Name: "balance_year"}},
	DoUpdates: clause.AssignmentColumns([]string{"balance_amount", "balance_updated_at"}),
}

/* ================= Handlers ================= */

// PUT /api/a/finance/balances
func (h *BalanceController) Upsert(c *fiber.Ctx) error {
	var req balDTO.UpsertBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateBalance.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	now := time.Now()
	m.BalanceUpdatedAt = &now
	if err := h.DB.Clauses(onConflictYear).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save balance")
	}

	// Re-read so the response carries the stored row's ID and timestamps.
	var stored balModel.BalanceBroughtForwardModel
	if err := h.DB.Where("balance_year = ?", m.BalanceYear).First(&stored).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch balance")
	}
	return helper.JsonUpdated(c, "Opening balance saved", balDTO.NewBalanceResponse(&stored))
}

// GET /api/finance/balances
func (h *BalanceController) List(c *fiber.Ctx) error {
	var rows []balModel.BalanceBroughtForwardModel
	if err := h.DB.Order("balance_year DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch balances")
	}
	resp := make([]*balDTO.BalanceResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, balDTO.NewBalanceResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", resp)
}

// GET /api/finance/balances/:year
func (h *BalanceController) GetByYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}
	var m balModel.BalanceBroughtForwardModel
	if err := h.DB.Where("balance_year = ?", year).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "No opening balance for that year")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch balance")
	}
	return helper.JsonOK(c, "OK", balDTO.NewBalanceResponse(&m))
}

// DELETE /api/a/finance/balances/:year
func (h *BalanceController) DeleteByYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}

	res := h.DB.Where("balance_year = ?", year).Delete(&balModel.BalanceBroughtForwardModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete balance")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No opening balance for that year")
	}
	return helper.JsonDeleted(c, "Opening balance deleted", fiber.Map{"balance_year": year})
}

package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportSvc "gerejaku_backend/internals/features/finance/reports/service"
	helper "gerejaku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// loadSnapshot pulls one year's finance records into memory. The totals
// themselves are computed by the pure service layer.
func (h *ReportController) loadSnapshot(year int) (reportSvc.Snapshot, error) {
	var s reportSvc.Snapshot
	from, to := helper.YearRange(year)

	if err := h.DB.
		Where("member_payment_year = ?", year).
		Find(&s.Payments).Error; err != nil {
		return s, err
	}
	if err := h.DB.
		Where("contribution_date >= ? AND contribution_date < ?", from, to).
		Find(&s.Contributions).Error; err != nil {
		return s, err
	}
	if err := h.DB.
		Where("donation_date >= ? AND donation_date < ?", from, to).
		Find(&s.Donations).Error; err != nil {
		return s, err
	}
	if err := h.DB.
		Where("expense_date >= ? AND expense_date < ?", from, to).
		Find(&s.Expenses).Error; err != nil {
		return s, err
	}
	if err := h.DB.
		Where("balance_year = ?", year).
		Find(&s.Balances).Error; err != nil {
		return s, err
	}
	return s, nil
}

/* ================= Handlers ================= */

// GET /api/finance/reports/yearly?year=
func (h *ReportController) Yearly(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}

	snap, err := h.loadSnapshot(year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load finance records")
	}
	return helper.JsonOK(c, "OK", reportSvc.YearlyTotalsFor(snap, year))
}

// GET /api/finance/reports/monthly?year=&month=
func (h *ReportController) Monthly(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 0 || month > 11 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid month")
	}

	snap, err := h.loadSnapshot(year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load finance records")
	}
	return helper.JsonOK(c, "OK", reportSvc.MonthlyReportFor(snap, year, month))
}

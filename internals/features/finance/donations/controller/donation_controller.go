package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	donDTO "gerejaku_backend/internals/features/finance/donations/dto"
	donModel "gerejaku_backend/internals/features/finance/donations/model"
	helper "gerejaku_backend/internals/helpers"
)

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

var validateDonation = validator.New()

func (h *DonationController) findDonation(id uuid.UUID) (*donModel.DonationModel, error) {
	var m donModel.DonationModel
	if err := h.DB.Where("donation_id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Donation not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch donation")
	}
	return &m, nil
}

/* ================= Handlers ================= */

// POST /api/a/finance/donations
func (h *DonationController) Create(c *fiber.Ctx) error {
	var req donDTO.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateDonation.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create donation")
	}
	return helper.JsonCreated(c, "Donation recorded", donDTO.NewDonationResponse(m))
}

// GET /api/finance/donations?year=&month=
func (h *DonationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&donModel.DonationModel{})
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
			tx = tx.Where("donation_date >= ? AND donation_date < ?", from, to)
		} else {
			from, to := helper.YearRange(year)
			tx = tx.Where("donation_date >= ? AND donation_date < ?", from, to)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count donations")
	}

	var rows []donModel.DonationModel
	if err := tx.
		Order("donation_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	resp := make([]*donDTO.DonationResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, donDTO.NewDonationResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/finance/donations/:id
func (h *DonationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findDonation(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", donDTO.NewDonationResponse(m))
}

// PUT /api/a/finance/donations/:id
func (h *DonationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	existing, err := h.findDonation(id)
	if err != nil {
		return err
	}

	var req donDTO.UpdateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateDonation.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(existing)
	if err := h.DB.Save(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update donation")
	}
	return helper.JsonUpdated(c, "Donation updated", donDTO.NewDonationResponse(existing))
}

// DELETE /api/a/finance/donations/:id
func (h *DonationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	res := h.DB.Where("donation_id = ?", id).Delete(&donModel.DonationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete donation")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Donation not found")
	}
	return helper.JsonDeleted(c, "Donation deleted", fiber.Map{"donation_id": id})
}

package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contribDTO "gerejaku_backend/internals/features/finance/contributions/dto"
	contribModel "gerejaku_backend/internals/features/finance/contributions/model"
	helper "gerejaku_backend/internals/helpers"
)

type ContributionController struct {
	DB *gorm.DB
}

func NewContributionController(db *gorm.DB) *ContributionController {
	return &ContributionController{DB: db}
}

var validateContribution = validator.New()

func (h *ContributionController) findContribution(id uuid.UUID) (*contribModel.ContributionModel, error) {
	var m contribModel.ContributionModel
	if err := h.DB.Where("contribution_id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Contribution not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch contribution")
	}
	return &m, nil
}

/* ================= Handlers ================= */

// POST /api/a/finance/contributions
func (h *ContributionController) Create(c *fiber.Ctx) error {
	var req contribDTO.CreateContributionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateContribution.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create contribution")
	}
	return helper.JsonCreated(c, "Contribution recorded", contribDTO.NewContributionResponse(m))
}

// GET /api/finance/contributions?year=&month=
func (h *ContributionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&contribModel.ContributionModel{})
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
			tx = tx.Where("contribution_date >= ? AND contribution_date < ?", from, to)
		} else {
			from, to := helper.YearRange(year)
			tx = tx.Where("contribution_date >= ? AND contribution_date < ?", from, to)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count contributions")
	}

	var rows []contribModel.ContributionModel
	if err := tx.
		Order("contribution_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch contributions")
	}

	resp := make([]*contribDTO.ContributionResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, contribDTO.NewContributionResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/finance/contributions/:id
func (h *ContributionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findContribution(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", contribDTO.NewContributionResponse(m))
}

// PUT /api/a/finance/contributions/:id
func (h *ContributionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	existing, err := h.findContribution(id)
	if err != nil {
		return err
	}

	var req contribDTO.UpdateContributionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateContribution.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(existing)
	if err := h.DB.Save(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update contribution")
	}
	return helper.JsonUpdated(c, "Contribution updated", contribDTO.NewContributionResponse(existing))
}

// DELETE /api/a/finance/contributions/:id
func (h *ContributionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	res := h.DB.Where("contribution_id = ?", id).Delete(&contribModel.ContributionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete contribution")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Contribution not found")
	}
	return helper.JsonDeleted(c, "Contribution deleted", fiber.Map{"contribution_id": id})
}

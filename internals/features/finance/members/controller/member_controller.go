package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	memberDTO "gerejaku_backend/internals/features/finance/members/dto"
	memberModel "gerejaku_backend/internals/features/finance/members/model"
	payModel "gerejaku_backend/internals/features/finance/payments/model"
	paySvc "gerejaku_backend/internals/features/finance/payments/service"
	helper "gerejaku_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

var validateMember = validator.New()

func (h *MemberController) findMember(id uuid.UUID) (*memberModel.MemberModel, error) {
	var m memberModel.MemberModel
	if err := h.DB.Where("member_id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Member not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch member")
	}
	return &m, nil
}

/* ================= Handlers ================= */

// POST /api/a/finance/members
func (h *MemberController) Create(c *fiber.Ctx) error {
	var req memberDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateMember.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create member")
	}
	return helper.JsonCreated(c, "Member created", memberDTO.NewMemberResponse(m))
}

// GET /api/finance/members
func (h *MemberController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&memberModel.MemberModel{})
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		tx = tx.Where("member_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var rows []memberModel.MemberModel
	if err := tx.
		Order("member_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	resp := make([]*memberDTO.MemberResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, memberDTO.NewMemberResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/finance/members/:id
func (h *MemberController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findMember(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", memberDTO.NewMemberResponse(m))
}

// GET /api/finance/members/:id/payments?year=YYYY
// The dues vector is recomputed from the flat payment rows on every call;
// it is never stored on the member.
func (h *MemberController) GetDuesVector(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}

	if _, err := h.findMember(id); err != nil {
		return err
	}

	var payments []payModel.MemberPaymentModel
	if err := h.DB.
		Where("member_payment_member_id = ? AND member_payment_year = ?", id, year).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.JsonOK(c, "OK", memberDTO.MemberDuesResponse{
		MemberID: id,
		Year:     year,
		Months:   paySvc.YearVector(payments, id, year, constants.DefaultMonthlyDues),
	})
}

// PUT /api/a/finance/members/:id
func (h *MemberController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	existing, err := h.findMember(id)
	if err != nil {
		return err
	}

	var req memberDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateMember.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(existing)
	if err := h.DB.Save(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}
	return helper.JsonUpdated(c, "Member updated", memberDTO.NewMemberResponse(existing))
}

// DELETE /api/a/finance/members/:id (soft delete; payment history stays)
func (h *MemberController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	res := h.DB.Where("member_id = ?", id).Delete(&memberModel.MemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	return helper.JsonDeleted(c, "Member deleted", fiber.Map{"member_id": id})
}

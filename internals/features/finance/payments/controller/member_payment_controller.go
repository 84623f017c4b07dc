package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gerejaku_backend/internals/constants"
	payDTO "gerejaku_backend/internals/features/finance/payments/dto"
	payModel "gerejaku_backend/internals/features/finance/payments/model"
	paySvc "gerejaku_backend/internals/features/finance/payments/service"
	helper "gerejaku_backend/internals/helpers"
)

type MemberPaymentController struct {
	DB *gorm.DB
}

func NewMemberPaymentController(db *gorm.DB) *MemberPaymentController {
	return &MemberPaymentController{DB: db}
}

var validatePayment = validator.New()

// onConflictPeriod is the upsert target: at most one row per
// (member, year, month).
var onConflictPeriod = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "member_payment_member_id"},
		{Name: "member_payment_year"},
		{Name: "member_payment_month"},
	},
	DoUpdates: clause.AssignmentColumns([]string{
		"member_payment_amount",
		"member_payment_paid",
		"member_payment_paid_at",
		"member_payment_updated_at",
	}),
}

/* ================= Handlers ================= */

// GET /api/finance/payments?year=YYYY[&member_id=]
func (h *MemberPaymentController) List(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}

	tx := h.DB.Where("member_payment_year = ?", year)
	if mid := c.Query("member_id"); mid != "" {
		id, err := uuid.Parse(mid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member_id")
		}
		tx = tx.Where("member_payment_member_id = ?", id)
	}

	var rows []payModel.MemberPaymentModel
	if err := tx.
		Order("member_payment_member_id, member_payment_month").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	resp := make([]*payDTO.MemberPaymentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, payDTO.NewMemberPaymentResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"total": len(resp),
		"items": resp,
	})
}

// POST /api/a/finance/payments — upsert one month cell.
func (h *MemberPaymentController) Upsert(c *fiber.Ctx) error {
	var req payDTO.UpsertMemberPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validatePayment.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(constants.DefaultMonthlyDues)
	now := time.Now()
	m.MemberPaymentUpdatedAt = &now

	if err := h.DB.Clauses(onConflictPeriod).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save payment")
	}
	return h.respondWithStored(c, "Payment saved", m.MemberPaymentMemberID, m.MemberPaymentYear, m.MemberPaymentMonth)
}

// POST /api/a/finance/payments/toggle — flip one month's paid flag.
// Toggling the same cell twice restores its original state.
func (h *MemberPaymentController) Toggle(c *fiber.Ctx) error {
	var req payDTO.ToggleMemberPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validatePayment.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing payModel.MemberPaymentModel
	var found *payModel.MemberPaymentModel
	err := h.DB.
		Where("member_payment_member_id = ? AND member_payment_year = ? AND member_payment_month = ?",
			req.MemberPaymentMemberID, req.MemberPaymentYear, req.MemberPaymentMonth).
		First(&existing).Error
	if err == nil {
		found = &existing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payment")
	}

	next := paySvc.ApplyToggle(found, req.MemberPaymentMemberID, req.MemberPaymentYear, req.MemberPaymentMonth,
		constants.DefaultMonthlyDues, time.Now())

	if err := h.DB.Clauses(onConflictPeriod).Create(&next).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save payment")
	}
	return h.respondWithStored(c, "Payment toggled", next.MemberPaymentMemberID, next.MemberPaymentYear, next.MemberPaymentMonth)
}

// DELETE /api/a/finance/payments/:id
func (h *MemberPaymentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	res := h.DB.Where("member_payment_id = ?", id).Delete(&payModel.MemberPaymentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete payment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}
	return helper.JsonDeleted(c, "Payment deleted", fiber.Map{"member_payment_id": id})
}

// respondWithStored re-reads the row after the upsert so the response carries
// the stored id and timestamps, whichever write path landed.
func (h *MemberPaymentController) respondWithStored(c *fiber.Ctx, msg string, memberID uuid.UUID, year, month int) error {
	var stored payModel.MemberPaymentModel
	if err := h.DB.
		Where("member_payment_member_id = ? AND member_payment_year = ? AND member_payment_month = ?",
			memberID, year, month).
		First(&stored).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch saved payment")
	}
	return helper.JsonUpdated(c, msg, payDTO.NewMemberPaymentResponse(&stored))
}

package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	unitDTO "gerejaku_backend/internals/features/support/dto"
	unitStore "gerejaku_backend/internals/features/support/store"
	helper "gerejaku_backend/internals/helpers"
)

// UnitController serves the support directory. The backing store is process
// memory: edits are lost on restart.
type UnitController struct {
	Store *unitStore.UnitStore
}

func NewUnitController(store *unitStore.UnitStore) *UnitController {
	return &UnitController{Store: store}
}

var validateUnit = validator.New()

/* ================= Handlers ================= */

// POST /api/a/support/units
func (h *UnitController) Create(c *fiber.Ctx) error {
	var req unitDTO.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateUnit.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	u := h.Store.Create(req.UnitName, req.UnitDescription, unitDTO.ToUnitMembers(req.UnitMembers))
	return helper.JsonCreated(c, "Unit created", u)
}

// GET /api/support/units
func (h *UnitController) List(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", h.Store.List())
}

// GET /api/support/units/:id
func (h *UnitController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	u, err := h.Store.Get(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
	}
	return helper.JsonOK(c, "OK", u)
}

// PUT /api/a/support/units/:id
func (h *UnitController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var req unitDTO.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateUnit.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	u, err := h.Store.Update(id, req.UnitName, req.UnitDescription, unitDTO.ToUnitMembers(req.UnitMembers))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
	}
	return helper.JsonUpdated(c, "Unit updated", u)
}

// DELETE /api/a/support/units/:id
func (h *UnitController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	if err := h.Store.Delete(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
	}
	return helper.JsonDeleted(c, "Unit deleted", fiber.Map{"unit_id": id})
}

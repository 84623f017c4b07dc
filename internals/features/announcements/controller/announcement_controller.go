package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	annDTO "gerejaku_backend/internals/features/announcements/dto"
	annModel "gerejaku_backend/internals/features/announcements/model"
	annSvc "gerejaku_backend/internals/features/announcements/service"
	helper "gerejaku_backend/internals/helpers"
	ossHelper "gerejaku_backend/internals/helpers/oss"
)

const attachmentDir = "announcements"

type AnnouncementController struct {
	DB   *gorm.DB
	Blob ossHelper.BlobService // nil until first multipart request; tests inject a mock
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validateAnnouncement = validator.New()

func (h *AnnouncementController) ensureBlob() (ossHelper.BlobService, error) {
	if h.Blob != nil {
		return h.Blob, nil
	}
	svc, err := ossHelper.NewOSSBlobServiceFromEnv(attachmentDir)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Object storage is not configured")
	}
	h.Blob = svc
	return h.Blob, nil
}

func (h *AnnouncementController) findAnnouncement(id uuid.UUID) (*annModel.AnnouncementModel, error) {
	var m annModel.AnnouncementModel
	if err := h.DB.Where("announcement_id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Announcement not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch announcement")
	}
	return &m, nil
}

// collectAttachments uploads the "attachments" file parts of a multipart
// request. Requests without files (or plain JSON) yield nil with no error.
func (h *AnnouncementController) collectAttachments(c *fiber.Ctx) ([]string, error) {
	if !ossHelper.IsMultipart(c) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["attachments"]
	if len(files) == 0 {
		return nil, nil
	}
	blob, err := h.ensureBlob()
	if err != nil {
		return nil, err
	}
	return annSvc.UploadAll(c.Context(), blob, attachmentDir, files), nil
}

/* ================= Handlers ================= */

// POST /api/a/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req annDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	urls, err := h.collectAttachments(c)
	if err != nil {
		return err
	}

	m := req.ToModel()
	m.AnnouncementAttachmentURLs = pq.StringArray(urls)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement published", annDTO.NewAnnouncementResponse(m))
}

// GET /api/announcements?priority=&pinned=
// Pinned announcements sort first, then newest first.
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&annModel.AnnouncementModel{})
	if p := c.Query("priority"); p != "" {
		if !annModel.IsValidPriority(p) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid priority")
		}
		tx = tx.Where("announcement_priority = ?", p)
	}
	if pinned := c.Query("pinned"); pinned != "" {
		tx = tx.Where("announcement_pinned = ?", pinned == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count announcements")
	}

	var rows []annModel.AnnouncementModel
	if err := tx.
		Order("announcement_pinned DESC, announcement_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	resp := make([]*annDTO.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, annDTO.NewAnnouncementResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/announcements/:id
func (h *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	m, err := h.findAnnouncement(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", annDTO.NewAnnouncementResponse(m))
}

// PUT /api/a/announcements/:id
// New attachments are appended to whatever the announcement already carries.
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	existing, err := h.findAnnouncement(id)
	if err != nil {
		return err
	}

	var req annDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	urls, err := h.collectAttachments(c)
	if err != nil {
		return err
	}

	req.ApplyToModel(existing)
	if len(urls) > 0 {
		existing.AnnouncementAttachmentURLs = append(existing.AnnouncementAttachmentURLs, urls...)
	}
	if err := h.DB.Save(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated", annDTO.NewAnnouncementResponse(existing))
}

// PATCH /api/a/announcements/:id/pin
func (h *AnnouncementController) TogglePin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	existing, err := h.findAnnouncement(id)
	if err != nil {
		return err
	}

	existing.AnnouncementPinned = !existing.AnnouncementPinned
	if err := h.DB.Model(existing).
		Update("announcement_pinned", existing.AnnouncementPinned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Pin state updated", annDTO.NewAnnouncementResponse(existing))
}

// DELETE /api/a/announcements/:id
// Stored attachments are removed best-effort after the row is gone.
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	existing, err := h.findAnnouncement(id)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}

	if len(existing.AnnouncementAttachmentURLs) > 0 {
		if blob, berr := h.ensureBlob(); berr == nil {
			annSvc.DeleteAll(c.Context(), blob, existing.AnnouncementAttachmentURLs)
		}
	}
	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"announcement_id": id})
}

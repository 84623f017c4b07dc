package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "gerejaku_backend/internals/features/announcements/model"
)

/* ===================== REQUESTS ===================== */

// CreateAnnouncementRequest is accepted both as JSON and as multipart form
// fields (attachments ride alongside as file parts).
type CreateAnnouncementRequest struct {
	AnnouncementTitle      string `json:"announcement_title" form:"announcement_title" validate:"required,min=3,max=255"`
	AnnouncementBody       string `json:"announcement_body" form:"announcement_body" validate:"required,min=3"`
	AnnouncementPriority   string `json:"announcement_priority" form:"announcement_priority" validate:"omitempty,oneof=low medium high"`
	AnnouncementPinned     bool   `json:"announcement_pinned" form:"announcement_pinned"`
	AnnouncementSenderName string `json:"announcement_sender_name" form:"announcement_sender_name" validate:"omitempty,max=255"`
	AnnouncementVenue      string `json:"announcement_venue" form:"announcement_venue" validate:"omitempty,max=255"`
	AnnouncementEventDate  string `json:"announcement_event_date" form:"announcement_event_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateAnnouncementRequest) ToModel() *model.AnnouncementModel {
	m := &model.AnnouncementModel{
		AnnouncementTitle:      strings.TrimSpace(r.AnnouncementTitle),
		AnnouncementBody:       strings.TrimSpace(r.AnnouncementBody),
		AnnouncementPriority:   r.AnnouncementPriority,
		AnnouncementPinned:     r.AnnouncementPinned,
		AnnouncementSenderName: strings.TrimSpace(r.AnnouncementSenderName),
		AnnouncementVenue:      strings.TrimSpace(r.AnnouncementVenue),
	}
	if m.AnnouncementPriority == "" {
		m.AnnouncementPriority = model.PriorityMedium
	}
	if r.AnnouncementEventDate != "" {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(r.AnnouncementEventDate)); err == nil {
			m.AnnouncementEventDate = &d
		}
	}
	return m
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle      *string `json:"announcement_title" form:"announcement_title" validate:"omitempty,min=3,max=255"`
	AnnouncementBody       *string `json:"announcement_body" form:"announcement_body" validate:"omitempty,min=3"`
	AnnouncementPriority   *string `json:"announcement_priority" form:"announcement_priority" validate:"omitempty,oneof=low medium high"`
	AnnouncementPinned     *bool   `json:"announcement_pinned" form:"announcement_pinned"`
	AnnouncementSenderName *string `json:"announcement_sender_name" form:"announcement_sender_name" validate:"omitempty,max=255"`
	AnnouncementVenue      *string `json:"announcement_venue" form:"announcement_venue" validate:"omitempty,max=255"`
	AnnouncementEventDate  *string `json:"announcement_event_date" form:"announcement_event_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) {
	if r.AnnouncementTitle != nil {
		m.AnnouncementTitle = strings.TrimSpace(*r.AnnouncementTitle)
	}
	if r.AnnouncementBody != nil {
		m.AnnouncementBody = strings.TrimSpace(*r.AnnouncementBody)
	}
	if r.AnnouncementPriority != nil {
		m.AnnouncementPriority = *r.AnnouncementPriority
	}
	if r.AnnouncementPinned != nil {
		m.AnnouncementPinned = *r.AnnouncementPinned
	}
	if r.AnnouncementSenderName != nil {
		m.AnnouncementSenderName = strings.TrimSpace(*r.AnnouncementSenderName)
	}
	if r.AnnouncementVenue != nil {
		m.AnnouncementVenue = strings.TrimSpace(*r.AnnouncementVenue)
	}
	if r.AnnouncementEventDate != nil {
		if *r.AnnouncementEventDate == "" {
			m.AnnouncementEventDate = nil
		} else if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.AnnouncementEventDate)); err == nil {
			m.AnnouncementEventDate = &d
		}
	}
	now := time.Now()
	m.AnnouncementUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type AnnouncementResponse struct {
	AnnouncementID             uuid.UUID  `json:"announcement_id"`
	AnnouncementTitle          string     `json:"announcement_title"`
	AnnouncementBody           string     `json:"announcement_body"`
	AnnouncementPriority       string     `json:"announcement_priority"`
	AnnouncementPinned         bool       `json:"announcement_pinned"`
	AnnouncementSenderName     string     `json:"announcement_sender_name,omitempty"`
	AnnouncementVenue          string     `json:"announcement_venue,omitempty"`
	AnnouncementEventDate      *string    `json:"announcement_event_date,omitempty"`
	AnnouncementAttachmentURLs []string   `json:"announcement_attachment_urls"`
	AnnouncementCreatedAt      time.Time  `json:"announcement_created_at"`
	AnnouncementUpdatedAt      *time.Time `json:"announcement_updated_at,omitempty"`
}

func NewAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	resp := &AnnouncementResponse{
		AnnouncementID:             m.AnnouncementID,
		AnnouncementTitle:          m.AnnouncementTitle,
		AnnouncementBody:           m.AnnouncementBody,
		AnnouncementPriority:       m.AnnouncementPriority,
		AnnouncementPinned:         m.AnnouncementPinned,
		AnnouncementSenderName:     m.AnnouncementSenderName,
		AnnouncementVenue:          m.AnnouncementVenue,
		AnnouncementAttachmentURLs: []string(m.AnnouncementAttachmentURLs),
		AnnouncementCreatedAt:      m.AnnouncementCreatedAt,
		AnnouncementUpdatedAt:      m.AnnouncementUpdatedAt,
	}
	if resp.AnnouncementAttachmentURLs == nil {
		resp.AnnouncementAttachmentURLs = []string{}
	}
	if m.AnnouncementEventDate != nil {
		s := m.AnnouncementEventDate.Format("2006-01-02")
		resp.AnnouncementEventDate = &s
	}
	return resp
}

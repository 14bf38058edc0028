// file: internals/features/school/announcements/dto/announcement_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "sekolahku_backend/internals/features/school/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title    string     `json:"title" validate:"required,min=3,max=160"`
	Body     string     `json:"body" validate:"required,min=3"`
	Audience []string   `json:"audience" validate:"omitempty,dive,oneof=owner admin teacher student parent"`
	ClassID  *uuid.UUID `json:"class_id" validate:"omitempty"`
	Pinned   bool       `json:"pinned"`
}

func (r CreateAnnouncementRequest) ToModel(schoolID, createdBy uuid.UUID) *m.AnnouncementModel {
	return &m.AnnouncementModel{
		AnnouncementSchoolID:  schoolID,
		AnnouncementTitle:     strings.TrimSpace(r.Title),
		AnnouncementBody:      r.Body,
		AnnouncementAudience:  pq.StringArray(r.Audience),
		AnnouncementClassID:   r.ClassID,
		AnnouncementCreatedBy: createdBy,
		AnnouncementPinned:    r.Pinned,
	}
}

type UpdateAnnouncementRequest struct {
	Title    *string    `json:"title" validate:"omitempty,min=3,max=160"`
	Body     *string    `json:"body" validate:"omitempty,min=3"`
	Audience *[]string  `json:"audience" validate:"omitempty,dive,oneof=owner admin teacher student parent"`
	ClassID  *uuid.UUID `json:"class_id" validate:"omitempty"`
	Pinned   *bool      `json:"pinned" validate:"omitempty"`
}

func (r *UpdateAnnouncementRequest) ApplyToModel(a *m.AnnouncementModel) {
	if r.Title != nil {
		a.AnnouncementTitle = strings.TrimSpace(*r.Title)
	}
	if r.Body != nil {
		a.AnnouncementBody = *r.Body
	}
	if r.Audience != nil {
		a.AnnouncementAudience = pq.StringArray(*r.Audience)
	}
	if r.ClassID != nil {
		a.AnnouncementClassID = r.ClassID
	}
	if r.Pinned != nil {
		a.AnnouncementPinned = *r.Pinned
	}
}

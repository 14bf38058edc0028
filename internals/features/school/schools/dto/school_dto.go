// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"strings"

	m "sekolahku_backend/internals/features/school/schools/model"
)

/* ===================== REQUESTS ===================== */

type CreateSchoolRequest struct {
	SchoolName    string  `json:"school_name" validate:"required,min=3,max=160"`
	SchoolAddress *string `json:"school_address" validate:"omitempty"`
	SchoolPhone   *string `json:"school_phone" validate:"omitempty,max=32"`
	SchoolEmail   *string `json:"school_email" validate:"omitempty,email"`
}

func (r CreateSchoolRequest) ToModel() *m.SchoolModel {
	sm := &m.SchoolModel{
		SchoolName:     strings.TrimSpace(r.SchoolName),
		SchoolIsActive: true,
	}
	sm.SchoolAddress = trimPtr(r.SchoolAddress)
	sm.SchoolPhone = trimPtr(r.SchoolPhone)
	sm.SchoolEmail = trimPtr(r.SchoolEmail)
	return sm
}

// Update: semua optional (partial update)
type UpdateSchoolRequest struct {
	SchoolName     *string `json:"school_name" validate:"omitempty,min=3,max=160"`
	SchoolAddress  *string `json:"school_address" validate:"omitempty"`
	SchoolPhone    *string `json:"school_phone" validate:"omitempty,max=32"`
	SchoolEmail    *string `json:"school_email" validate:"omitempty,email"`
	SchoolIsActive *bool   `json:"school_is_active" validate:"omitempty"`
}

func (r *UpdateSchoolRequest) ApplyToModel(sm *m.SchoolModel) {
	if r.SchoolName != nil {
		sm.SchoolName = strings.TrimSpace(*r.SchoolName)
	}
	if r.SchoolAddress != nil {
		sm.SchoolAddress = trimPtr(r.SchoolAddress)
	}
	if r.SchoolPhone != nil {
		sm.SchoolPhone = trimPtr(r.SchoolPhone)
	}
	if r.SchoolEmail != nil {
		sm.SchoolEmail = trimPtr(r.SchoolEmail)
	}
	if r.SchoolIsActive != nil {
		sm.SchoolIsActive = *r.SchoolIsActive
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

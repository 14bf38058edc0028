// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	ClassName              string     `json:"class_name" validate:"required,min=1,max=80"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id" validate:"omitempty"`
}

func (r CreateClassRequest) ToModel(schoolID uuid.UUID) *m.ClassModel {
	return &m.ClassModel{
		ClassSchoolID:          schoolID,
		ClassName:              strings.TrimSpace(r.ClassName),
		ClassHomeroomTeacherID: r.ClassHomeroomTeacherID,
	}
}

type UpdateClassRequest struct {
	ClassName              *string    `json:"class_name" validate:"omitempty,min=1,max=80"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id" validate:"omitempty"`
}

func (r *UpdateClassRequest) ApplyToModel(cm *m.ClassModel) {
	if r.ClassName != nil {
		cm.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassHomeroomTeacherID != nil {
		cm.ClassHomeroomTeacherID = r.ClassHomeroomTeacherID
	}
}

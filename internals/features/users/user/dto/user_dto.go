// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "sekolahku_backend/internals/features/users/user/model"
)

// CreateUserRequest: pembuatan akun oleh admin/owner (role apa pun yang
// lolos CanAssignRole); register publik terbatas student/parent.
type CreateUserRequest struct {
	UserName     string      `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string      `json:"user_email" validate:"required,email"`
	UserPassword string      `json:"user_password" validate:"required,min=8"`
	UserRole     string      `json:"user_role" validate:"required,oneof=owner admin teacher student parent"`
	UserSchoolID *uuid.UUID  `json:"user_school_id" validate:"omitempty"`
	UserClassID  *uuid.UUID  `json:"user_class_id" validate:"omitempty"`
	UserChildIDs []uuid.UUID `json:"user_child_ids" validate:"omitempty,dive,required"`
}

func (r CreateUserRequest) ToModel(hashedPassword string) *m.UserModel {
	childIDs := make(pq.StringArray, 0, len(r.UserChildIDs))
	for _, id := range r.UserChildIDs {
		childIDs = append(childIDs, id.String())
	}
	return &m.UserModel{
		UserName:     strings.TrimSpace(r.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(r.UserEmail)),
		UserPassword: hashedPassword,
		UserRole:     r.UserRole,
		UserSchoolID: r.UserSchoolID,
		UserClassID:  r.UserClassID,
		UserChildIDs: childIDs,
		UserIsActive: true,
	}
}

type UpdateUserRequest struct {
	UserName     *string      `json:"user_name" validate:"omitempty,min=3,max=100"`
	UserRole     *string      `json:"user_role" validate:"omitempty,oneof=admin teacher student parent"`
	UserClassID  *uuid.UUID   `json:"user_class_id" validate:"omitempty"`
	UserChildIDs *[]uuid.UUID `json:"user_child_ids" validate:"omitempty,dive,required"`
	UserIsActive *bool        `json:"user_is_active" validate:"omitempty"`
}

func (r *UpdateUserRequest) ApplyToModel(u *m.UserModel) {
	if r.UserName != nil {
		u.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.UserRole != nil {
		u.UserRole = *r.UserRole
	}
	if r.UserClassID != nil {
		u.UserClassID = r.UserClassID
	}
	if r.UserChildIDs != nil {
		ids := make(pq.StringArray, 0, len(*r.UserChildIDs))
		for _, id := range *r.UserChildIDs {
			ids = append(ids, id.String())
		}
		u.UserChildIDs = ids
	}
	if r.UserIsActive != nil {
		u.UserIsActive = *r.UserIsActive
	}
}

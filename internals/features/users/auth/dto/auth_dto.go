// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

// RegisterRequest: endpoint publik, jadi role dibatasi non-privileged.
// Akun owner/admin/teacher hanya lewat POST /api/users (butuh token admin).
type RegisterRequest struct {
	UserName     string      `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string      `json:"user_email" validate:"required,email"`
	UserPassword string      `json:"user_password" validate:"required,min=8"`
	UserRole     string      `json:"user_role" validate:"required,oneof=student parent"`
	UserSchoolID *uuid.UUID  `json:"user_school_id" validate:"required"`
	UserClassID  *uuid.UUID  `json:"user_class_id" validate:"omitempty"`
	UserChildIDs []uuid.UUID `json:"user_child_ids" validate:"omitempty,dive,required"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type AuthUserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
	UserClassID  *uuid.UUID `json:"user_class_id,omitempty"`
}

type LoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         AuthUserResponse `json:"user"`
}

func NewAuthUserResponse(u *userModel.UserModel) AuthUserResponse {
	return AuthUserResponse{
		UserID:       u.UserID,
		UserName:     u.UserName,
		UserEmail:    u.UserEmail,
		UserRole:     u.UserRole,
		UserSchoolID: u.UserSchoolID,
		UserClassID:  u.UserClassID,
	}
}

// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/users/auth/dto"
	svc "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

// POST /api/auth/register — publik, student/parent saja.
// Akun staff dibuat admin/owner via POST /api/users.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	childIDs := make(pq.StringArray, 0, len(req.UserChildIDs))
	for _, id := range req.UserChildIDs {
		childIDs = append(childIDs, id.String())
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: string(hashed),
		UserRole:     req.UserRole,
		UserSchoolID: req.UserSchoolID,
		UserClassID:  req.UserClassID,
		UserChildIDs: childIDs,
		UserIsActive: true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "users_user_email_key") || strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}
	return helper.JsonCreated(c, "Registrasi berhasil", d.NewAuthUserResponse(&user))
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun nonaktif")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, refresh, err := svc.IssueTokenPair(&user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", d.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         d.NewAuthUserResponse(&user),
	})
}

// POST /api/auth/refresh — tukar refresh token dengan pasangan token baru
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	uid, err := svc.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", uid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun nonaktif")
	}

	access, refresh, err := svc.IssueTokenPair(&user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Token diperbarui", d.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         d.NewAuthUserResponse(&user),
	})
}

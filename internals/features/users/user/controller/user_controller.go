// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	d "sekolahku_backend/internals/features/users/user/dto"
	m "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

// POST /api/users — owner/admin; jalur pembuatan akun staff (dan siapa pun
// yang lolos CanAssignRole). Admin hanya bisa membuat akun di sekolahnya.
func (ctl *UserController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageUsers); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if !helperAuth.CanAssignRole(helperAuth.GetRole(c), req.UserRole) {
		return helper.JsonError(c, fiber.StatusForbidden, "Role tersebut tidak boleh Anda berikan")
	}

	// tenant: admin terkunci di sekolahnya sendiri; owner bebas memilih
	if !helperAuth.IsOwner(c) {
		schoolID, err := helperAuth.GetSchoolIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		req.UserSchoolID = &schoolID
	}
	if req.UserRole != constants.RoleOwner && req.UserSchoolID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_school_id wajib diisi untuk role non-owner")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := req.ToModel(string(hashed))
	if err := ctl.DB.WithContext(c.UserContext()).Create(user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}
	return helper.JsonCreated(c, "Akun dibuat", user)
}

// GET /api/users — owner/admin; filter ?role= & ?class_id=
func (ctl *UserController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageUsers); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil && !helperAuth.IsOwner(c) {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.UserModel{})
	if !helperAuth.IsOwner(c) {
		q = q.Where("user_school_id = ?", schoolID)
	} else if err == nil {
		q = q.Where("user_school_id = ?", schoolID)
	}

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		q = q.Where("user_role = ?", role)
	}
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		q = q.Where("user_class_id = ?", classID)
	}

	p := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []m.UserModel
	if err := q.Order("user_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", users, &pg)
}

// GET /api/users/me — profil caller
func (ctl *UserController) Me(c *fiber.Ctx) error {
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "OK", user)
}

// GET /api/users/:id — owner/admin
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageUsers); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "OK", user)
}

// PUT /api/users/:id — owner/admin
func (ctl *UserController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageUsers); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req d.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	// role owner tidak bisa diberikan/dicabut lewat endpoint ini
	if user.UserRole == constants.RoleOwner {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun owner tidak bisa diubah lewat endpoint ini")
	}

	req.ApplyToModel(&user)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}
	return helper.JsonUpdated(c, "User diperbarui", user)
}

// DELETE /api/users/:id — owner/admin; soft-deactivate, bukan hard delete
func (ctl *UserController) Deactivate(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageUsers); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&m.UserModel{}).
		Where("user_id = ? AND user_role <> ?", id, constants.RoleOwner).
		Update("user_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User dinonaktifkan", fiber.Map{"user_id": id})
}

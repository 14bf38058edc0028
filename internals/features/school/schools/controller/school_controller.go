// file: internals/features/school/schools/controller/school_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/schools/dto"
	m "sekolahku_backend/internals/features/school/schools/model"
	svc "sekolahku_backend/internals/features/school/schools/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB, v *validator.Validate) *SchoolController {
	return &SchoolController{DB: db, Validate: v}
}

// POST /api/schools — owner only
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageSchools); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	school := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sekolah")
	}
	return helper.JsonCreated(c, "Sekolah dibuat", school)
}

// GET /api/schools — owner only (daftar semua tenant)
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageSchools); err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.SchoolModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sekolah")
	}

	var schools []m.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("school_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sekolah")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", schools, &pg)
}

// GET /api/schools/:id — staff sekolah ybs atau owner
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if !helperAuth.IsOwner(c) {
		schoolID, err := helperAuth.GetSchoolIDFromToken(c)
		if err != nil || schoolID != id {
			return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh mengakses sekolah lain")
		}
	}

	var school m.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}
	return helper.JsonOK(c, "OK", school)
}

// PUT /api/schools/:id — owner, atau admin sekolah ybs
func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if !helperAuth.IsOwner(c) {
		if err := helperAuth.EnsureCan(c, helperAuth.ActionManageOwnSchool); err != nil {
			return helper.FromFiberError(c, err)
		}
		schoolID, err := helperAuth.GetSchoolIDFromToken(c)
		if err != nil || schoolID != id {
			return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh mengubah sekolah lain")
		}
	}

	var req d.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var school m.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	req.ApplyToModel(&school)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui sekolah")
	}
	return helper.JsonUpdated(c, "Sekolah diperbarui", school)
}

// DELETE /api/schools/:id — owner only; cascade satu transaksi
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageSchools); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var school m.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sekolah")
	}

	if err := svc.DeleteSchoolCascade(c.UserContext(), ctl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}
	return helper.JsonDeleted(c, "Sekolah dan seluruh datanya dihapus", fiber.Map{"school_id": id})
}

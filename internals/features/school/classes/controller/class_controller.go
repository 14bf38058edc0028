// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/classes/dto"
	m "sekolahku_backend/internals/features/school/classes/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validate: v}
}

// POST /api/classes — owner/admin
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageClasses); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	class := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(class).Error; err != nil {
		if strings.Contains(err.Error(), "uq_classes_school_name") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai di sekolah ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas dibuat", class)
}

// GET /api/classes — semua kelas di sekolah caller
func (ctl *ClassController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var classes []m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_school_id = ?", schoolID).
		Order("class_name ASC").
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}
	return helper.JsonOK(c, "OK", classes)
}

// GET /api/classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var class m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return helper.JsonOK(c, "OK", class)
}

// GET /api/classes/:id/students — roster siswa aktif, staff only
func (ctl *ClassController) ListStudents(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionViewClassAttendance); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var students []userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("user_class_id = ? AND user_role = ? AND user_is_active = TRUE", id, "student").
		Order("user_name ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster kelas")
	}
	return helper.JsonOK(c, "OK", students)
}

// PUT /api/classes/:id — owner/admin
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageClasses); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var class m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	req.ApplyToModel(&class)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&class).Error; err != nil {
		if strings.Contains(err.Error(), "uq_classes_school_name") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah dipakai di sekolah ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas diperbarui", class)
}

// DELETE /api/classes/:id — owner/admin; siswa dilepas dari kelas, bukan dihapus
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageClasses); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_class_id = ?", id).
			Update("user_class_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("class_id = ?", id).Delete(&m.ClassModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return helper.JsonDeleted(c, "Kelas dihapus", fiber.Map{"class_id": id})
}

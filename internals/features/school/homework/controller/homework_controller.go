// file: internals/features/school/homework/controller/homework_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/homework/dto"
	m "sekolahku_backend/internals/features/school/homework/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type HomeworkController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHomeworkController(db *gorm.DB, v *validator.Validate) *HomeworkController {
	return &HomeworkController{DB: db, Validate: v}
}

// POST /api/homework — teacher/admin/owner
func (ctl *HomeworkController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageHomework); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req d.CreateHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hw, err := req.ToModel(schoolID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(hw).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PR")
	}
	return helper.JsonCreated(c, "PR dibuat", hw)
}

// GET /api/homework/class/:classId — semua role; ?upcoming=true hanya yang belum lewat
func (ctl *HomeworkController) ListByClass(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionViewHomework); err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDParam(c, "classId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Where("homework_class_id = ?", classID)
	if strings.EqualFold(c.Query("upcoming"), "true") {
		q = q.Where("homework_due_date >= CURRENT_DATE")
	}

	var homeworks []m.HomeworkModel
	if err := q.Order("homework_due_date ASC").Find(&homeworks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar PR")
	}
	return helper.JsonOK(c, "OK", homeworks)
}

// PUT /api/homework/:id
func (ctl *HomeworkController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageHomework); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req d.UpdateHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var hw m.HomeworkModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&hw, "homework_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "PR tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil PR")
	}

	if err := req.ApplyToModel(&hw); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&hw).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui PR")
	}
	return helper.JsonUpdated(c, "PR diperbarui", hw)
}

// DELETE /api/homework/:id
func (ctl *HomeworkController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageHomework); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("homework_id = ?", id).Delete(&m.HomeworkModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus PR")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "PR tidak ditemukan")
	}
	return helper.JsonDeleted(c, "PR dihapus", fiber.Map{"homework_id": id})
}

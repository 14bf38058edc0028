// file: internals/features/school/announcements/controller/announcement_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/announcements/dto"
	m "sekolahku_backend/internals/features/school/announcements/model"
	svc "sekolahku_backend/internals/features/school/announcements/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB, v *validator.Validate) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: v}
}

// POST /api/announcements — admin/owner
func (ctl *AnnouncementController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageAnnouncements); err != nil {
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

	var req d.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	ann := req.ToModel(schoolID, userID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(ann).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}
	return helper.JsonCreated(c, "Pengumuman dibuat", ann)
}

// GET /api/announcements — feed sesuai role pembaca (audience & scope kelas)
func (ctl *AnnouncementController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionViewAnnouncements); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var all []m.AnnouncementModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("announcement_school_id = ?", schoolID).
		Order("announcement_pinned DESC, announcement_created_at DESC").
		Find(&all).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	// staff melihat semua; student/parent difilter audience + kelas
	if helperAuth.IsStaff(c) {
		return helper.JsonOK(c, "OK", all)
	}
	classID, err := ctl.readerClassID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menentukan kelas pembaca")
	}
	return helper.JsonOK(c, "OK", svc.FilterVisible(all, helperAuth.GetRole(c), classID))
}

// readerClassID: student pakai kelasnya sendiri; parent pakai kelas anak pertama.
func (ctl *AnnouncementController) readerClassID(c *fiber.Ctx) (*uuid.UUID, error) {
	var targetID uuid.UUID
	switch {
	case helperAuth.IsStudent(c):
		uid, err := helperAuth.GetUserIDFromToken(c)
		if err != nil {
			return nil, nil
		}
		targetID = uid
	case helperAuth.IsParent(c):
		children := helperAuth.GetChildIDsFromToken(c)
		if len(children) == 0 {
			return nil, nil
		}
		targetID = children[0]
	default:
		return nil, nil
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Select("user_class_id").
		First(&user, "user_id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user.UserClassID, nil
}

// PUT /api/announcements/:id
func (ctl *AnnouncementController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageAnnouncements); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req d.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var ann m.AnnouncementModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ann, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	req.ApplyToModel(&ann)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ann).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}
	return helper.JsonUpdated(c, "Pengumuman diperbarui", ann)
}

// DELETE /api/announcements/:id
func (ctl *AnnouncementController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageAnnouncements); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("announcement_id = ?", id).Delete(&m.AnnouncementModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pengumuman dihapus", fiber.Map{"announcement_id": id})
}

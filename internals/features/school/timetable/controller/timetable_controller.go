// file: internals/features/school/timetable/controller/timetable_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/timetable/dto"
	m "sekolahku_backend/internals/features/school/timetable/model"
	svc "sekolahku_backend/internals/features/school/timetable/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.TimetableService
}

func NewTimetableController(db *gorm.DB, v *validator.Validate) *TimetableController {
	return &TimetableController{
		DB:       db,
		Validate: v,
		Service:  svc.NewTimetableService(svc.NewGormStore(db)),
	}
}

// POST /api/timetable
func (ctl *TimetableController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageTimetable); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req d.TimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	in, err := req.ToInput(schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entry, err := ctl.Service.CreateEntry(c.UserContext(), in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Jadwal dibuat", d.NewTimetableEntryResponse(entry))
}

// PUT /api/timetable/:id
func (ctl *TimetableController) Update(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageTimetable); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req d.TimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	in, err := req.ToInput(schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entry, err := ctl.Service.UpdateEntry(c.UserContext(), id, in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Jadwal diperbarui", d.NewTimetableEntryResponse(entry))
}

// DELETE /api/timetable/:id
func (ctl *TimetableController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageTimetable); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctl.Service.DeleteEntry(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Jadwal dihapus", fiber.Map{"timetable_entry_id": id})
}

// GET /api/timetable/class/:classId — semua role terautentikasi
func (ctl *TimetableController) ListByClass(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionViewTimetable); err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDParam(c, "classId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var entries []m.TimetableEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timetable_entry_class_id = ?", classID).
		Order("timetable_entry_day_of_week ASC, timetable_entry_period ASC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal kelas")
	}
	return helper.JsonOK(c, "OK", d.NewTimetableEntryResponses(entries))
}

// GET /api/timetable/teacher/:teacherId — staff only
func (ctl *TimetableController) ListByTeacher(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionViewTeacherSchedule); err != nil {
		return helper.FromFiberError(c, err)
	}
	teacherID, err := helper.ParseUUIDParam(c, "teacherId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher id tidak valid")
	}

	var entries []m.TimetableEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timetable_entry_teacher_id = ?", teacherID).
		Order("timetable_entry_day_of_week ASC, timetable_entry_period ASC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal guru")
	}
	return helper.JsonOK(c, "OK", d.NewTimetableEntryResponses(entries))
}

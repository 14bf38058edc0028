// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/attendance/dto"
	svc "sekolahku_backend/internals/features/school/attendance/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.AttendanceService
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: v,
		Service:  svc.NewAttendanceService(svc.NewGormStore(db)),
	}
}

// POST /api/attendance
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionMarkAttendance); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	markedBy, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req d.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	date, err := req.ParseDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	n, err := ctl.Service.Mark(c.UserContext(), svc.MarkInput{
		SchoolID: schoolID,
		MarkedBy: markedBy,
		Date:     date,
		Period:   req.PeriodOrDefault(),
		Status:   req.ModelStatus(),
		UserIDs:  req.UserIDs,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Absensi tersimpan", fiber.Map{"marked": n})
}

// GET /api/attendance/:userId
func (ctl *AttendanceController) ListByUser(c *fiber.Ctx) error {
	targetID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user id tidak valid")
	}
	if err := helperAuth.EnsureCanViewAttendance(c, targetID); err != nil {
		return helper.FromFiberError(c, err)
	}

	records, err := ctl.Service.ListByUser(c.UserContext(), targetID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", d.NewAttendanceResponses(records))
}

// GET /api/attendance/:userId/summary
func (ctl *AttendanceController) Summary(c *fiber.Ctx) error {
	targetID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user id tidak valid")
	}
	if err := helperAuth.EnsureCanViewAttendance(c, targetID); err != nil {
		return helper.FromFiberError(c, err)
	}

	counts, err := ctl.Service.Summary(c.UserContext(), targetID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", counts)
}

// GET /api/attendance/class/:classId?date=&period=
func (ctl *AttendanceController) ListByClass(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionViewClassAttendance); err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDParam(c, "classId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var date *time.Time
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		t, err := helper.ParseDateYYYYMMDD(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		date = &t
	}
	var period *int
	if raw := strings.TrimSpace(c.Query("period")); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			return helper.JsonError(c, fiber.StatusBadRequest, "period tidak valid")
		}
		period = &p
	}

	records, err := ctl.Service.ListByClass(c.UserContext(), classID, date, period)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", d.NewAttendanceResponses(records))
}

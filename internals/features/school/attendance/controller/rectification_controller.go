// file: internals/features/school/attendance/controller/rectification_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	m "sekolahku_backend/internals/features/school/attendance/model"
	d "sekolahku_backend/internals/features/school/attendance/dto"
	svc "sekolahku_backend/internals/features/school/attendance/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// PUT /api/attendance/rectify
// Student mengajukan untuk dirinya sendiri; teacher via student_id.
func (ctl *AttendanceController) RequestRectification(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionRequestRectify); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.RequestRectificationRequest
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

	// target: student_id dari teacher, selain itu user dari token
	targetID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if req.StudentID != nil {
		if !helperAuth.IsStaff(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Siswa hanya boleh mengajukan untuk dirinya sendiri")
		}
		targetID = *req.StudentID
	}

	rec, err := ctl.Service.RequestRectification(c.UserContext(), svc.RequestRectificationInput{
		UserID:         targetID,
		Date:           date,
		Period:         req.Period,
		Reason:         req.Reason,
		ProposedStatus: req.ProposedStatus(),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Pengajuan rectification tersimpan", d.NewAttendanceResponse(rec))
}

// PUT /api/attendance/rectify/approve
func (ctl *AttendanceController) DecideRectification(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionDecideRectify); err != nil {
		return helper.FromFiberError(c, err)
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req d.DecideRectificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	rec, err := ctl.Service.DecideRectification(c.UserContext(), req.AttendanceID, schoolID, m.RectificationStatus(req.Status))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Keputusan tersimpan", d.NewAttendanceResponse(rec))
}

// GET /api/attendance/rectify/pending
func (ctl *AttendanceController) ListPending(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionDecideRectify); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	records, err := ctl.Service.ListPendingRectifications(c.UserContext(), schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", d.NewAttendanceResponses(records))
}

// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtl "sekolahku_backend/internals/features/school/attendance/controller"
)

// Dipanggil dari SetupRoutes; r sudah diproteksi AuthMiddleware.
// Gate per-aksi ada di controller (tabel kapabilitas).
func AttendanceRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := attCtl.NewAttendanceController(db, v)

	att := r.Group("/attendance")

	att.Post("/", ctl.Mark)
	att.Put("/rectify", ctl.RequestRectification)
	att.Put("/rectify/approve", ctl.DecideRectification)
	att.Get("/rectify/pending", ctl.ListPending)
	att.Get("/class/:classId", ctl.ListByClass)
	att.Get("/:userId/summary", ctl.Summary)
	att.Get("/:userId", ctl.ListByUser)
}

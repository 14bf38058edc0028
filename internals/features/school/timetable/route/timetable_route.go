// file: internals/features/school/timetable/route/timetable_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttCtl "sekolahku_backend/internals/features/school/timetable/controller"
)

// Dipanggil dari SetupRoutes; r sudah diproteksi AuthMiddleware.
func TimetableRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := ttCtl.NewTimetableController(db, v)

	tt := r.Group("/timetable")

	tt.Post("/", ctl.Create)
	tt.Put("/:id", ctl.Update)
	tt.Delete("/:id", ctl.Delete)
	tt.Get("/class/:classId", ctl.ListByClass)
	tt.Get("/teacher/:teacherId", ctl.ListByTeacher)
}

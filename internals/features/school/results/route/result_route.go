// file: internals/features/school/results/route/result_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultCtl "sekolahku_backend/internals/features/school/results/controller"
)

func ResultRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := resultCtl.NewResultController(db, v)

	results := r.Group("/results")

	results.Post("/", ctl.Upsert)
	results.Get("/student/:studentId", ctl.ListByStudent)
	results.Get("/class/:classId/exam/:examName", ctl.ListByClassExam)
	results.Put("/:id/publish", ctl.Publish)
}

// file: internals/features/school/homework/route/homework_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeworkCtl "sekolahku_backend/internals/features/school/homework/controller"
)

func HomeworkRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := homeworkCtl.NewHomeworkController(db, v)

	hw := r.Group("/homework")

	hw.Post("/", ctl.Create)
	hw.Get("/class/:classId", ctl.ListByClass)
	hw.Put("/:id", ctl.Update)
	hw.Delete("/:id", ctl.Delete)
}

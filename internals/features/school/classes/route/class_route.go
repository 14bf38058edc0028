// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "sekolahku_backend/internals/features/school/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := classCtl.NewClassController(db, v)

	classes := r.Group("/classes")

	classes.Post("/", ctl.Create)
	classes.Get("/", ctl.List)
	classes.Get("/:id/students", ctl.ListStudents)
	classes.Get("/:id", ctl.GetByID)
	classes.Put("/:id", ctl.Update)
	classes.Delete("/:id", ctl.Delete)
}

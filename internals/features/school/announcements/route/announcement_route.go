// file: internals/features/school/announcements/route/announcement_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annCtl "sekolahku_backend/internals/features/school/announcements/controller"
)

func AnnouncementRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := annCtl.NewAnnouncementController(db, v)

	ann := r.Group("/announcements")

	ann.Post("/", ctl.Create)
	ann.Get("/", ctl.List)
	ann.Put("/:id", ctl.Update)
	ann.Delete("/:id", ctl.Delete)
}

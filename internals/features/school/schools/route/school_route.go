// file: internals/features/school/schools/route/school_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	schoolCtl "sekolahku_backend/internals/features/school/schools/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := schoolCtl.NewSchoolController(db, v)

	// student/parent tidak punya urusan di endpoint sekolah
	schools := r.Group("/schools", authMw.OnlyRoles(
		constants.RoleErrorStaff("sekolah"),
		constants.StaffRoles...,
	))

	ownerOnly := authMw.OnlyRoles(constants.RoleErrorOwner("sekolah"), constants.RoleOwner)

	schools.Post("/", ownerOnly, ctl.Create)
	schools.Get("/", ownerOnly, ctl.List)
	schools.Get("/:id", ctl.GetByID)
	schools.Put("/:id", ctl.Update)
	schools.Delete("/:id", ownerOnly, ctl.Delete)
}

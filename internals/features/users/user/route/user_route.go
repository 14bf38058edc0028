// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userCtl "sekolahku_backend/internals/features/users/user/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := userCtl.NewUserController(db, v)

	users := r.Group("/users")

	// profil sendiri: semua role terautentikasi
	users.Get("/me", ctl.Me)

	// manajemen akun: admin/owner saja (gate kasar di route,
	// gate halus CanAssignRole/kapabilitas di controller)
	manage := users.Group("", authMw.OnlyRoles(
		constants.RoleErrorAdmin("manajemen user"),
		constants.AdminRoles...,
	))
	manage.Post("/", ctl.Create)
	manage.Get("/", ctl.List)
	manage.Get("/:id", ctl.GetByID)
	manage.Put("/:id", ctl.Update)
	manage.Delete("/:id", ctl.Deactivate)
}

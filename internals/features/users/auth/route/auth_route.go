// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "sekolahku_backend/internals/features/users/auth/controller"
)

// AuthRoutes terpasang di group publik (tanpa AuthMiddleware).
func AuthRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := authCtl.NewAuthController(db, v)

	auth := r.Group("/auth")

	auth.Post("/register", ctl.Register)
	auth.Post("/login", ctl.Login)
	auth.Post("/refresh", ctl.Refresh)
}

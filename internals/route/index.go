// file: internals/route/index.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "sekolahku_backend/internals/features/school/announcements/route"
	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	classRoute "sekolahku_backend/internals/features/school/classes/route"
	homeworkRoute "sekolahku_backend/internals/features/school/homework/route"
	resultRoute "sekolahku_backend/internals/features/school/results/route"
	schoolRoute "sekolahku_backend/internals/features/school/schools/route"
	timetableRoute "sekolahku_backend/internals/features/school/timetable/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	userRoute "sekolahku_backend/internals/features/users/user/route"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// SetupRoutes: /api/auth publik; sisanya di belakang AuthMiddleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	validate := validator.New()

	api := app.Group("/api")

	// publik
	authRoute.AuthRoutes(api, db, validate)

	// terproteksi
	protected := api.Group("", authMw.AuthMiddleware())

	schoolRoute.SchoolRoutes(protected, db, validate)
	userRoute.UserRoutes(protected, db, validate)
	classRoute.ClassRoutes(protected, db, validate)
	timetableRoute.TimetableRoutes(protected, db, validate)
	attendanceRoute.AttendanceRoutes(protected, db, validate)
	homeworkRoute.HomeworkRoutes(protected, db, validate)
	resultRoute.ResultRoutes(protected, db, validate)
	announcementRoute.AnnouncementRoutes(protected, db, validate)
}

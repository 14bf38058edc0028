// file: internals/features/school/results/controller/result_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "sekolahku_backend/internals/features/school/results/dto"
	m "sekolahku_backend/internals/features/school/results/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ResultController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResultController(db *gorm.DB, v *validator.Validate) *ResultController {
	return &ResultController{DB: db, Validate: v}
}

// POST /api/results — teacher/admin/owner; upsert per (siswa, ujian)
func (ctl *ResultController) Upsert(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageResults); err != nil {
		return helper.FromFiberError(c, err)
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req d.UpsertResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	result, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "scores tidak valid")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "result_student_id"},
				{Name: "result_exam_name"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"result_class_id", "result_scores", "result_total",
				"result_grade", "result_published", "result_updated_at",
			}),
		}).
		Create(result).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonCreated(c, "Nilai disimpan", result)
}

// GET /api/results/student/:studentId — siswa hanya miliknya, parent anak tertaut
func (ctl *ResultController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}
	if err := helperAuth.EnsureCanViewAttendance(c, studentID); err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Where("result_student_id = ?", studentID)
	// non-staff hanya melihat rapor yang sudah dipublikasikan
	if !helperAuth.IsStaff(c) {
		q = q.Where("result_published = TRUE")
	}

	var results []m.ResultModel
	if err := q.Order("result_created_at DESC").Find(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai siswa")
	}
	return helper.JsonOK(c, "OK", results)
}

// GET /api/results/class/:classId/exam/:examName — staff only
func (ctl *ResultController) ListByClassExam(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageResults); err != nil {
		return helper.FromFiberError(c, err)
	}
	classID, err := helper.ParseUUIDParam(c, "classId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class id tidak valid")
	}
	examName, err := helper.DecodedParam(c, "examName")
	if err != nil || examName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam name tidak valid")
	}

	var results []m.ResultModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("result_class_id = ? AND result_exam_name = ?", classID, examName).
		Order("result_total DESC").
		Find(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai kelas")
	}
	return helper.JsonOK(c, "OK", results)
}

// PUT /api/results/:id/publish
func (ctl *ResultController) Publish(c *fiber.Ctx) error {
	if err := helperAuth.EnsureCan(c, helperAuth.ActionManageResults); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ResultModel{}).
		Where("result_id = ?", id).
		Update("result_published", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mempublikasikan nilai")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Nilai dipublikasikan", fiber.Map{"result_id": id})
}

// file: internals/features/school/results/dto/result_dto.go
package dto

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/school/results/model"
	svc "sekolahku_backend/internals/features/school/results/service"
)

// UpsertResultRequest: satu (siswa, ujian) = satu record; kiriman ulang menimpa.
type UpsertResultRequest struct {
	ClassID   uuid.UUID          `json:"class_id" validate:"required"`
	StudentID uuid.UUID          `json:"student_id" validate:"required"`
	ExamName  string             `json:"exam_name" validate:"required,min=2,max=120"`
	Scores    map[string]float64 `json:"scores" validate:"required,min=1,dive,min=0,max=100"`
	Published bool               `json:"published"`
}

func (r UpsertResultRequest) ToModel(schoolID uuid.UUID) (*m.ResultModel, error) {
	raw, err := sonic.Marshal(r.Scores)
	if err != nil {
		return nil, err
	}
	total := svc.ComputeTotal(r.Scores)
	return &m.ResultModel{
		ResultSchoolID:  schoolID,
		ResultClassID:   r.ClassID,
		ResultStudentID: r.StudentID,
		ResultExamName:  strings.TrimSpace(r.ExamName),
		ResultScores:    datatypes.JSON(raw),
		ResultTotal:     total,
		ResultGrade:     svc.GradeFor(total),
		ResultPublished: r.Published,
	}, nil
}

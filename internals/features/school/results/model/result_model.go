// file: internals/features/school/results/model/result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ResultModel struct {
	ResultID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:result_id" json:"result_id"`
	ResultSchoolID  uuid.UUID `gorm:"type:uuid;not null;index;column:result_school_id" json:"result_school_id"`
	ResultClassID   uuid.UUID `gorm:"type:uuid;not null;index;column:result_class_id" json:"result_class_id"`
	ResultStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_results_student_exam;column:result_student_id" json:"result_student_id"`

	ResultExamName string `gorm:"type:varchar(120);not null;uniqueIndex:uq_results_student_exam;column:result_exam_name" json:"result_exam_name"`

	// breakdown nilai per mapel {"Matematika": 88, ...}
	ResultScores datatypes.JSON `gorm:"column:result_scores" json:"result_scores"`

	ResultTotal     float64 `gorm:"not null;default:0;column:result_total" json:"result_total"`
	ResultGrade     string  `gorm:"type:varchar(4);not null;default:'';column:result_grade" json:"result_grade"`
	ResultPublished bool    `gorm:"not null;default:false;column:result_published" json:"result_published"`

	ResultCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:result_created_at" json:"result_created_at"`
	ResultUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:result_updated_at" json:"result_updated_at"`
}

func (ResultModel) TableName() string { return "results" }

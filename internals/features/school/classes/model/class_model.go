// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassModel struct {
	ClassID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classes_school_name;column:class_school_id" json:"class_school_id"`
	ClassName     string    `gorm:"type:varchar(80);not null;uniqueIndex:uq_classes_school_name;column:class_name" json:"class_name"`

	// wali kelas (opsional)
	ClassHomeroomTeacherID *uuid.UUID `gorm:"type:uuid;column:class_homeroom_teacher_id" json:"class_homeroom_teacher_id,omitempty"`

	ClassCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }

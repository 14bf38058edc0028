// file: internals/features/school/homework/model/homework_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HomeworkModel struct {
	HomeworkID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:homework_id" json:"homework_id"`
	HomeworkSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:homework_school_id" json:"homework_school_id"`
	HomeworkClassID  uuid.UUID `gorm:"type:uuid;not null;index;column:homework_class_id" json:"homework_class_id"`

	HomeworkSubject     string  `gorm:"type:varchar(120);not null;column:homework_subject" json:"homework_subject"`
	HomeworkTitle       string  `gorm:"type:varchar(160);not null;column:homework_title" json:"homework_title"`
	HomeworkDescription *string `gorm:"type:text;column:homework_description" json:"homework_description,omitempty"`

	HomeworkDueDate    time.Time `gorm:"type:date;not null;column:homework_due_date" json:"homework_due_date"`
	HomeworkAssignedBy uuid.UUID `gorm:"type:uuid;not null;column:homework_assigned_by" json:"homework_assigned_by"`

	// metadata lampiran [{name,url,size}] — file fisik di luar scope
	HomeworkAttachments datatypes.JSON `gorm:"column:homework_attachments" json:"homework_attachments,omitempty"`

	HomeworkCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:homework_created_at" json:"homework_created_at"`
	HomeworkUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:homework_updated_at" json:"homework_updated_at"`
}

func (HomeworkModel) TableName() string { return "homeworks" }

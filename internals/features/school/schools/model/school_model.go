// file: internals/features/school/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SchoolModel struct {
	SchoolID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`
	SchoolName    string    `gorm:"type:varchar(160);not null;column:school_name" json:"school_name"`
	SchoolAddress *string   `gorm:"type:text;column:school_address" json:"school_address,omitempty"`
	SchoolPhone   *string   `gorm:"type:varchar(32);column:school_phone" json:"school_phone,omitempty"`
	SchoolEmail   *string   `gorm:"type:varchar(255);column:school_email" json:"school_email,omitempty"`

	SchoolIsActive bool `gorm:"not null;default:true;column:school_is_active" json:"school_is_active"`

	SchoolCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:school_updated_at" json:"school_updated_at"`
}

func (SchoolModel) TableName() string { return "schools" }

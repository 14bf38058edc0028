// file: internals/features/school/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AnnouncementModel struct {
	AnnouncementID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`
	AnnouncementSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:announcement_school_id" json:"announcement_school_id"`

	AnnouncementTitle string `gorm:"type:varchar(160);not null;column:announcement_title" json:"announcement_title"`
	AnnouncementBody  string `gorm:"type:text;not null;column:announcement_body" json:"announcement_body"`

	// role target; kosong = semua role
	AnnouncementAudience pq.StringArray `gorm:"type:text[];column:announcement_audience" json:"announcement_audience,omitempty"`

	// opsional: hanya untuk satu kelas
	AnnouncementClassID *uuid.UUID `gorm:"type:uuid;index;column:announcement_class_id" json:"announcement_class_id,omitempty"`

	AnnouncementCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:announcement_created_by" json:"announcement_created_by"`
	AnnouncementPinned    bool      `gorm:"not null;default:false;column:announcement_pinned" json:"announcement_pinned"`

	AnnouncementCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:announcement_created_at" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:announcement_updated_at" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

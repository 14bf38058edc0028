// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel merepresentasikan tabel users.
// Satu akun = satu role; parent menautkan anak via user_child_ids.
type UserModel struct {
	UserID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserSchoolID *uuid.UUID `gorm:"type:uuid;index;column:user_school_id" json:"user_school_id,omitempty"` // NULL hanya untuk owner global

	UserName     string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string `gorm:"type:varchar(255);unique;not null;column:user_email" json:"user_email"`
	UserPassword string `gorm:"type:varchar(255);not null;column:user_password" json:"-"`
	UserRole     string `gorm:"type:varchar(20);not null;default:'student';column:user_role" json:"user_role"`

	// siswa: kelas aktif
	UserClassID *uuid.UUID `gorm:"type:uuid;index;column:user_class_id" json:"user_class_id,omitempty"`

	// parent: daftar user_id anak (uuid dalam bentuk text[])
	UserChildIDs pq.StringArray `gorm:"type:text[];column:user_child_ids" json:"user_child_ids,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

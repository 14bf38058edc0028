// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUMS
========================================================= */

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceHalfDay AttendanceStatus = "halfday"
)

func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay:
		return true
	}
	return false
}

// Status rectification (state machine: unrequested → pending → approved|rejected).
// Kolom kosong = unrequested; transisi dipusatkan di service/rectification.
type RectificationStatus string

const (
	RectificationNone     RectificationStatus = ""
	RectificationPending  RectificationStatus = "pending"
	RectificationApproved RectificationStatus = "approved"
	RectificationRejected RectificationStatus = "rejected"
)

/* =========================================================
   MODEL: attendance_records
========================================================= */

type AttendanceRecordModel struct {
	AttendanceID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_school_id" json:"attendance_school_id"`

	// Invariant: maksimal satu record per (user, date, period) — index unik
	// sekaligus kunci upsert di write path.
	AttendanceUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_user_slot;column:attendance_user_id" json:"attendance_user_id"`
	AttendanceDate   time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_user_slot;column:attendance_date" json:"attendance_date"`
	AttendancePeriod int       `gorm:"type:smallint;not null;default:1;uniqueIndex:uq_attendance_user_slot;column:attendance_period" json:"attendance_period"`

	AttendanceStatus   AttendanceStatus `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`
	AttendanceMarkedBy uuid.UUID        `gorm:"type:uuid;not null;column:attendance_marked_by" json:"attendance_marked_by"`

	// rectification tertanam di record (bukan koleksi terpisah)
	AttendanceRectRequested      bool                `gorm:"not null;default:false;column:attendance_rect_requested" json:"attendance_rect_requested"`
	AttendanceRectReason         *string             `gorm:"type:text;column:attendance_rect_reason" json:"attendance_rect_reason,omitempty"`
	AttendanceRectStatus         RectificationStatus `gorm:"type:varchar(10);not null;default:'';column:attendance_rect_status" json:"attendance_rect_status"`
	AttendanceRectProposedStatus *AttendanceStatus   `gorm:"type:varchar(10);column:attendance_rect_proposed_status" json:"attendance_rect_proposed_status,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

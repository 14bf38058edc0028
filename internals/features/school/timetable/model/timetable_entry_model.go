// file: internals/features/school/timetable/model/timetable_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUMS
========================================================= */

// Hari disimpan sebagai smallint 1..7 (1 = Monday) supaya ORDER BY natural.
var dayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

var dayNumbers = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

func DayName(n int) string { return dayNames[n] }

// DayNumber: 0 kalau nama hari tidak dikenal.
func DayNumber(name string) int { return dayNumbers[name] }

/* =========================================================
   MODEL: timetable_entries
========================================================= */

type TimetableEntryModel struct {
	TimetableEntryID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_entry_id" json:"timetable_entry_id"`
	TimetableEntrySchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:timetable_entry_school_id" json:"timetable_entry_school_id"`
	TimetableEntryClassID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_timetable_class_slot;column:timetable_entry_class_id" json:"timetable_entry_class_id"`

	// NULL untuk entri break (dipaksa di service, apa pun input-nya)
	TimetableEntryTeacherID *uuid.UUID `gorm:"type:uuid;index;column:timetable_entry_teacher_id" json:"timetable_entry_teacher_id,omitempty"`

	TimetableEntrySubject string `gorm:"type:varchar(120);not null;column:timetable_entry_subject" json:"timetable_entry_subject"`
	TimetableEntryIsBreak bool   `gorm:"not null;default:false;column:timetable_entry_is_break" json:"timetable_entry_is_break"`

	TimetableEntryDayOfWeek int `gorm:"type:smallint;not null;uniqueIndex:uq_timetable_class_slot;column:timetable_entry_day_of_week" json:"timetable_entry_day_of_week"`
	TimetableEntryPeriod    int `gorm:"type:smallint;not null;uniqueIndex:uq_timetable_class_slot;column:timetable_entry_period" json:"timetable_entry_period"`

	// jam dinding "HH:MM" (period adalah slot bernomor, bukan time-of-day)
	TimetableEntryStartTime string `gorm:"type:varchar(5);not null;column:timetable_entry_start_time" json:"timetable_entry_start_time"`
	TimetableEntryEndTime   string `gorm:"type:varchar(5);not null;column:timetable_entry_end_time" json:"timetable_entry_end_time"`

	TimetableEntryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:timetable_entry_created_at" json:"timetable_entry_created_at"`
	TimetableEntryUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:timetable_entry_updated_at" json:"timetable_entry_updated_at"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }

// file: internals/features/school/timetable/dto/timetable_dto.go
package dto

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
	svc "sekolahku_backend/internals/features/school/timetable/service"
)

/* ===================== REQUESTS ===================== */

type TimetableEntryRequest struct {
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	TeacherID *uuid.UUID `json:"teacher_id" validate:"omitempty"`
	Subject   string     `json:"subject" validate:"required,min=2,max=120"`
	Day       string     `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Period    int        `json:"period" validate:"required,min=1"`
	StartTime string     `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string     `json:"end_time" validate:"required,datetime=15:04"`
	IsBreak   bool       `json:"is_break"`
}

func (r TimetableEntryRequest) ToInput(schoolID uuid.UUID) (svc.EntryInput, error) {
	day := m.DayNumber(r.Day)
	if day == 0 {
		return svc.EntryInput{}, fiber.NewError(fiber.StatusBadRequest, "Hari tidak valid (Monday..Sunday)")
	}
	return svc.EntryInput{
		SchoolID:  schoolID,
		ClassID:   r.ClassID,
		TeacherID: r.TeacherID,
		Subject:   r.Subject,
		IsBreak:   r.IsBreak,
		DayOfWeek: day,
		Period:    r.Period,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}, nil
}

/* ===================== RESPONSES ===================== */

type TimetableEntryResponse struct {
	TimetableEntryID uuid.UUID  `json:"timetable_entry_id"`
	SchoolID         uuid.UUID  `json:"school_id"`
	ClassID          uuid.UUID  `json:"class_id"`
	TeacherID        *uuid.UUID `json:"teacher_id,omitempty"`
	Subject          string     `json:"subject"`
	IsBreak          bool       `json:"is_break"`
	Day              string     `json:"day"`
	Period           int        `json:"period"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
}

func NewTimetableEntryResponse(e *m.TimetableEntryModel) TimetableEntryResponse {
	return TimetableEntryResponse{
		TimetableEntryID: e.TimetableEntryID,
		SchoolID:         e.TimetableEntrySchoolID,
		ClassID:          e.TimetableEntryClassID,
		TeacherID:        e.TimetableEntryTeacherID,
		Subject:          e.TimetableEntrySubject,
		IsBreak:          e.TimetableEntryIsBreak,
		Day:              m.DayName(e.TimetableEntryDayOfWeek),
		Period:           e.TimetableEntryPeriod,
		StartTime:        e.TimetableEntryStartTime,
		EndTime:          e.TimetableEntryEndTime,
	}
}

func NewTimetableEntryResponses(entries []m.TimetableEntryModel) []TimetableEntryResponse {
	out := make([]TimetableEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewTimetableEntryResponse(&entries[i]))
	}
	return out
}

// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

// Mark: satu grup status per call; pola normal tiga call berurutan
// (present / absent / late) untuk date+period yang sama.
type MarkAttendanceRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1"`
	Date    string      `json:"date" validate:"required"`
	Status  string      `json:"status" validate:"required,oneof=present absent late halfday"`
	Period  int         `json:"period" validate:"omitempty,min=1"`
}

func (r MarkAttendanceRequest) ParseDate() (time.Time, error) {
	return helper.ParseDateYYYYMMDD(r.Date)
}

func (r MarkAttendanceRequest) ModelStatus() m.AttendanceStatus {
	return m.AttendanceStatus(r.Status)
}

func (r MarkAttendanceRequest) PeriodOrDefault() int {
	if r.Period < 1 {
		return 1
	}
	return r.Period
}

// Rectify: student mengajukan untuk dirinya sendiri; teacher boleh
// mengajukan atas nama siswa via student_id.
type RequestRectificationRequest struct {
	Date      string     `json:"date" validate:"required"`
	Reason    string     `json:"reason" validate:"required,min=3"`
	StudentID *uuid.UUID `json:"student_id" validate:"omitempty"`
	Period    int        `json:"period" validate:"omitempty,min=1"`
	NewStatus *string    `json:"new_status" validate:"omitempty,oneof=present absent late halfday"`
}

func (r RequestRectificationRequest) ParseDate() (time.Time, error) {
	return helper.ParseDateYYYYMMDD(r.Date)
}

func (r RequestRectificationRequest) ProposedStatus() *m.AttendanceStatus {
	if r.NewStatus == nil {
		return nil
	}
	s := m.AttendanceStatus(*r.NewStatus)
	return &s
}

type DecideRectificationRequest struct {
	AttendanceID uuid.UUID `json:"attendance_id" validate:"required"`
	Status       string    `json:"status" validate:"required,oneof=approved rejected"`
}

/* ===================== RESPONSES ===================== */

type RectificationResponse struct {
	Requested      bool    `json:"requested"`
	Reason         *string `json:"reason,omitempty"`
	Status         string  `json:"status"`
	ProposedStatus *string `json:"proposed_status,omitempty"`
}

type AttendanceResponse struct {
	AttendanceID  uuid.UUID             `json:"attendance_id"`
	SchoolID      uuid.UUID             `json:"school_id"`
	UserID        uuid.UUID             `json:"user_id"`
	Date          string                `json:"date"`
	Period        int                   `json:"period"`
	Status        string                `json:"status"`
	MarkedBy      uuid.UUID             `json:"marked_by"`
	Rectification RectificationResponse `json:"rectification"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func NewAttendanceResponse(rec *m.AttendanceRecordModel) AttendanceResponse {
	resp := AttendanceResponse{
		AttendanceID: rec.AttendanceID,
		SchoolID:     rec.AttendanceSchoolID,
		UserID:       rec.AttendanceUserID,
		Date:         rec.AttendanceDate.Format("2006-01-02"),
		Period:       rec.AttendancePeriod,
		Status:       string(rec.AttendanceStatus),
		MarkedBy:     rec.AttendanceMarkedBy,
		Rectification: RectificationResponse{
			Requested: rec.AttendanceRectRequested,
			Reason:    rec.AttendanceRectReason,
			Status:    string(rec.AttendanceRectStatus),
		},
		CreatedAt: rec.AttendanceCreatedAt,
		UpdatedAt: rec.AttendanceUpdatedAt,
	}
	if rec.AttendanceRectProposedStatus != nil {
		s := string(*rec.AttendanceRectProposedStatus)
		resp.Rectification.ProposedStatus = &s
	}
	return resp
}

func NewAttendanceResponses(records []m.AttendanceRecordModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for i := range records {
		out = append(out, NewAttendanceResponse(&records[i]))
	}
	return out
}

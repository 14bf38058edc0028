// file: internals/features/school/attendance/service/attendance_service.go
package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

// Store: akses persistence untuk recorder + rectification.
// (nil, nil) berarti record tidak ada.
type Store interface {
	// UpsertBatch: satu statement multi-row, ON CONFLICT (user,date,period)
	// DO UPDATE. Error apa pun = kegagalan agregat, bukan sukses parsial.
	UpsertBatch(ctx context.Context, records []m.AttendanceRecordModel) error
	FindSlot(ctx context.Context, userID uuid.UUID, date time.Time, period int) (*m.AttendanceRecordModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*m.AttendanceRecordModel, error)
	Save(ctx context.Context, rec *m.AttendanceRecordModel) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]m.AttendanceRecordModel, error)
	ListForUsers(ctx context.Context, userIDs []uuid.UUID, date *time.Time, period *int) ([]m.AttendanceRecordModel, error)
	ListPending(ctx context.Context, schoolID uuid.UUID) ([]m.AttendanceRecordModel, error)
	RosterUserIDs(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[m.AttendanceStatus]int64, error)
}

type AttendanceService struct {
	store Store
}

func NewAttendanceService(store Store) *AttendanceService {
	return &AttendanceService{store: store}
}

type MarkInput struct {
	SchoolID uuid.UUID
	MarkedBy uuid.UUID
	Date     time.Time
	Period   int
	Status   m.AttendanceStatus
	UserIDs  []uuid.UUID
}

// Mark: upsert batch per grup status. Pola pemakaian normal: tiga call
// berurutan (present-group, absent-group, late-group) untuk date/period
// yang sama; kalau client mengirim id yang overlap antar call, call
// terakhir yang menang (upsert menimpa).
func (s *AttendanceService) Mark(ctx context.Context, in MarkInput) (int, error) {
	if !m.ValidAttendanceStatus(in.Status) {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Status absensi tidak valid")
	}
	if in.Period < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Period minimal 1")
	}
	if len(in.UserIDs) == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "user_ids tidak boleh kosong")
	}

	// dedupe: id ganda dalam satu batch membuat ON CONFLICT DO UPDATE
	// menolak statement ("cannot affect row a second time")
	seen := make(map[uuid.UUID]struct{}, len(in.UserIDs))
	records := make([]m.AttendanceRecordModel, 0, len(in.UserIDs))
	date := normalizeDate(in.Date)
	for _, userID := range in.UserIDs {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}
		records = append(records, m.AttendanceRecordModel{
			AttendanceSchoolID: in.SchoolID,
			AttendanceUserID:   userID,
			AttendanceDate:     date,
			AttendancePeriod:   in.Period,
			AttendanceStatus:   in.Status,
			AttendanceMarkedBy: in.MarkedBy,
		})
	}

	if err := s.store.UpsertBatch(ctx, records); err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}
	return len(records), nil
}

// ListByUser: semua record milik satu user, terbaru dulu.
// Otorisasi (student self-only, parent anak tertaut) dicek di boundary.
func (s *AttendanceService) ListByUser(ctx context.Context, userID uuid.UUID) ([]m.AttendanceRecordModel, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	return records, nil
}

// ListByClass: resolve roster kelas dulu, lalu filter date/period opsional.
func (s *AttendanceService) ListByClass(ctx context.Context, classID uuid.UUID, date *time.Time, period *int) ([]m.AttendanceRecordModel, error) {
	roster, err := s.store.RosterUserIDs(ctx, classID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil roster kelas")
	}
	if len(roster) == 0 {
		return []m.AttendanceRecordModel{}, nil
	}
	if date != nil {
		d := normalizeDate(*date)
		date = &d
	}
	records, err := s.store.ListForUsers(ctx, roster, date, period)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil absensi kelas")
	}
	return records, nil
}

// Summary: rekap jumlah per status untuk satu siswa.
func (s *AttendanceService) Summary(ctx context.Context, userID uuid.UUID) (map[m.AttendanceStatus]int64, error) {
	counts, err := s.store.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap absensi")
	}
	// pastikan semua status muncul, termasuk yang nol
	for _, st := range []m.AttendanceStatus{m.AttendancePresent, m.AttendanceAbsent, m.AttendanceLate, m.AttendanceHalfDay} {
		if _, ok := counts[st]; !ok {
			counts[st] = 0
		}
	}
	return counts, nil
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

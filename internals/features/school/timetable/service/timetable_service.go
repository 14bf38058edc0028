// file: internals/features/school/timetable/service/timetable_service.go
package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

// Store: akses persistence yang dibutuhkan validasi jadwal.
// (nil, nil) berarti slot kosong.
type Store interface {
	FindClassSlot(ctx context.Context, classID uuid.UUID, dayOfWeek, period int) (*m.TimetableEntryModel, error)
	FindTeacherSlot(ctx context.Context, teacherID uuid.UUID, dayOfWeek, period int) (*m.TimetableEntryModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*m.TimetableEntryModel, error)
	ClassName(ctx context.Context, classID uuid.UUID) (string, error)
	Insert(ctx context.Context, entry *m.TimetableEntryModel) error
	Save(ctx context.Context, entry *m.TimetableEntryModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimetableService struct {
	store Store
}

func NewTimetableService(store Store) *TimetableService {
	return &TimetableService{store: store}
}

type EntryInput struct {
	SchoolID  uuid.UUID
	ClassID   uuid.UUID
	TeacherID *uuid.UUID
	Subject   string
	IsBreak   bool
	DayOfWeek int // 1..7 (Monday..Sunday)
	Period    int
	StartTime string
	EndTime   string
}

// CreateEntry memvalidasi lalu menyimpan satu slot jadwal.
// Pre-check di sini ada supaya error-nya deskriptif; index unik di storage
// tetap jadi penjaga terakhir ((class,day,period) penuh, (teacher,day,period)
// partial WHERE NOT is_break).
func (s *TimetableService) CreateEntry(ctx context.Context, in EntryInput) (*m.TimetableEntryModel, error) {
	if err := s.validateSlot(in); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, in, uuid.Nil); err != nil {
		return nil, err
	}

	entry := &m.TimetableEntryModel{
		TimetableEntrySchoolID:  in.SchoolID,
		TimetableEntryClassID:   in.ClassID,
		TimetableEntryTeacherID: in.TeacherID,
		TimetableEntrySubject:   in.Subject,
		TimetableEntryIsBreak:   in.IsBreak,
		TimetableEntryDayOfWeek: in.DayOfWeek,
		TimetableEntryPeriod:    in.Period,
		TimetableEntryStartTime: in.StartTime,
		TimetableEntryEndTime:   in.EndTime,
	}
	if in.IsBreak {
		// break tidak pernah punya guru, apa pun isi payload
		entry.TimetableEntryTeacherID = nil
	}

	if err := s.store.Insert(ctx, entry); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return entry, nil
}

// UpdateEntry: validasi yang sama, tapi slot milik entri itu sendiri tidak
// dihitung sebagai bentrok.
func (s *TimetableService) UpdateEntry(ctx context.Context, id uuid.UUID, in EntryInput) (*m.TimetableEntryModel, error) {
	entry, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	if entry == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}

	if err := s.validateSlot(in); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, in, id); err != nil {
		return nil, err
	}

	entry.TimetableEntryClassID = in.ClassID
	entry.TimetableEntryTeacherID = in.TeacherID
	entry.TimetableEntrySubject = in.Subject
	entry.TimetableEntryIsBreak = in.IsBreak
	entry.TimetableEntryDayOfWeek = in.DayOfWeek
	entry.TimetableEntryPeriod = in.Period
	entry.TimetableEntryStartTime = in.StartTime
	entry.TimetableEntryEndTime = in.EndTime
	if in.IsBreak {
		entry.TimetableEntryTeacherID = nil
	}

	if err := s.store.Save(ctx, entry); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return entry, nil
}

func (s *TimetableService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.store.FindByID(ctx, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	if entry == nil {
		return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	return nil
}

func (s *TimetableService) validateSlot(in EntryInput) error {
	if in.Period < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Period minimal 1")
	}
	if in.DayOfWeek < 1 || in.DayOfWeek > 7 {
		return fiber.NewError(fiber.StatusBadRequest, "Hari tidak valid (Monday..Sunday)")
	}
	if !in.IsBreak && in.TeacherID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "teacher_id wajib diisi untuk entri non-break")
	}
	return nil
}

// checkConflicts: slot kelas dan slot guru. excludeID != uuid.Nil saat update.
func (s *TimetableService) checkConflicts(ctx context.Context, in EntryInput, excludeID uuid.UUID) error {
	existing, err := s.store.FindClassSlot(ctx, in.ClassID, in.DayOfWeek, in.Period)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek jadwal kelas")
	}
	if existing != nil && existing.TimetableEntryID != excludeID {
		return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(
			"Kelas sudah punya jadwal pada %s period %d",
			m.DayName(in.DayOfWeek), existing.TimetableEntryPeriod,
		))
	}

	if in.IsBreak || in.TeacherID == nil {
		return nil
	}

	conflict, err := s.store.FindTeacherSlot(ctx, *in.TeacherID, in.DayOfWeek, in.Period)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek jadwal guru")
	}
	if conflict != nil && conflict.TimetableEntryID != excludeID {
		className, err := s.store.ClassName(ctx, conflict.TimetableEntryClassID)
		if err != nil || className == "" {
			className = conflict.TimetableEntryClassID.String()
		}
		return fiber.NewError(fiber.StatusConflict, fmt.Sprintf(
			"Guru sudah terjadwal di kelas %s pada %s period %d",
			className, m.DayName(in.DayOfWeek), in.Period,
		))
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

// fakeStore: in-memory Store untuk unit test (tanpa DB).
type fakeStore struct {
	entries    map[uuid.UUID]*m.TimetableEntryModel
	classNames map[uuid.UUID]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries:    map[uuid.UUID]*m.TimetableEntryModel{},
		classNames: map[uuid.UUID]string{},
	}
}

func (f *fakeStore) FindClassSlot(_ context.Context, classID uuid.UUID, day, period int) (*m.TimetableEntryModel, error) {
	for _, e := range f.entries {
		if e.TimetableEntryClassID == classID && e.TimetableEntryDayOfWeek == day && e.TimetableEntryPeriod == period {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindTeacherSlot(_ context.Context, teacherID uuid.UUID, day, period int) (*m.TimetableEntryModel, error) {
	for _, e := range f.entries {
		if e.TimetableEntryIsBreak || e.TimetableEntryTeacherID == nil {
			continue
		}
		if *e.TimetableEntryTeacherID == teacherID && e.TimetableEntryDayOfWeek == day && e.TimetableEntryPeriod == period {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*m.TimetableEntryModel, error) {
	return f.entries[id], nil
}

func (f *fakeStore) ClassName(_ context.Context, classID uuid.UUID) (string, error) {
	return f.classNames[classID], nil
}

func (f *fakeStore) Insert(_ context.Context, entry *m.TimetableEntryModel) error {
	entry.TimetableEntryID = uuid.New()
	f.entries[entry.TimetableEntryID] = entry
	return nil
}

func (f *fakeStore) Save(_ context.Context, entry *m.TimetableEntryModel) error {
	f.entries[entry.TimetableEntryID] = entry
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.entries, id)
	return nil
}

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func statusOf(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("expected *fiber.Error, got %T (%v)", err, err)
	}
	return fe.Code
}

func TestCreateEntryRejectsNonPositivePeriod(t *testing.T) {
	svc := NewTimetableService(newFakeStore())
	_, err := svc.CreateEntry(context.Background(), EntryInput{
		SchoolID: uuid.New(), ClassID: uuid.New(), TeacherID: ptr(uuid.New()),
		Subject: "Matematika", DayOfWeek: 1, Period: 0,
		StartTime: "07:00", EndTime: "07:45",
	})
	if err == nil || statusOf(t, err) != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for period 0, got %v", err)
	}
}

func TestCreateEntryClassSlotConflict(t *testing.T) {
	store := newFakeStore()
	svc := NewTimetableService(store)
	classA := uuid.New()

	first := EntryInput{
		SchoolID: uuid.New(), ClassID: classA, TeacherID: ptr(uuid.New()),
		Subject: "Matematika", DayOfWeek: 1, Period: 3,
		StartTime: "09:00", EndTime: "09:45",
	}
	if _, err := svc.CreateEntry(context.Background(), first); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// subject/guru beda, slot sama → tetap conflict
	second := first
	second.TeacherID = ptr(uuid.New())
	second.Subject = "Fisika"
	_, err := svc.CreateEntry(context.Background(), second)
	if err == nil || statusOf(t, err) != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate class slot, got %v", err)
	}
	if !strings.Contains(err.Error(), "period 3") {
		t.Fatalf("conflict message should name the existing period, got %q", err.Error())
	}
}

func TestCreateEntryTeacherDoubleBooking(t *testing.T) {
	store := newFakeStore()
	svc := NewTimetableService(store)

	teacher := uuid.New()
	classA, classB := uuid.New(), uuid.New()
	store.classNames[classA] = "7A"

	if _, err := svc.CreateEntry(context.Background(), EntryInput{
		SchoolID: uuid.New(), ClassID: classA, TeacherID: &teacher,
		Subject: "Matematika", DayOfWeek: 1, Period: 2,
		StartTime: "08:00", EndTime: "08:45",
	}); err != nil {
		t.Fatalf("insert classA: %v", err)
	}

	_, err := svc.CreateEntry(context.Background(), EntryInput{
		SchoolID: uuid.New(), ClassID: classB, TeacherID: &teacher,
		Subject: "Matematika", DayOfWeek: 1, Period: 2,
		StartTime: "08:00", EndTime: "08:45",
	})
	if err == nil || statusOf(t, err) != fiber.StatusConflict {
		t.Fatalf("expected 409 for teacher double-booking, got %v", err)
	}
	if !strings.Contains(err.Error(), "7A") {
		t.Fatalf("conflict message should name the conflicting class, got %q", err.Error())
	}
}

func TestCreateEntryBreakForcesNilTeacher(t *testing.T) {
	store := newFakeStore()
	svc := NewTimetableService(store)

	entry, err := svc.CreateEntry(context.Background(), EntryInput{
		SchoolID: uuid.New(), ClassID: uuid.New(), TeacherID: ptr(uuid.New()),
		Subject: "Istirahat", IsBreak: true, DayOfWeek: 2, Period: 4,
		StartTime: "10:00", EndTime: "10:15",
	})
	if err != nil {
		t.Fatalf("create break entry: %v", err)
	}
	if entry.TimetableEntryTeacherID != nil {
		t.Fatal("break entry should be persisted with nil teacher")
	}
}

func TestCreateEntryBreakSkipsTeacherCheck(t *testing.T) {
	store := newFakeStore()
	svc := NewTimetableService(store)

	teacher := uuid.New()
	if _, err := svc.CreateEntry(context.Background(), EntryInput{
		SchoolID: uuid.New(), ClassID: uuid.New(), TeacherID: &teacher,
		Subject: "Biologi", DayOfWeek: 3, Period: 1,
		StartTime: "07:00", EndTime: "07:45",
	}); err != nil {
		t.Fatalf("insert lesson: %v", err)
	}

	// break di slot yang sama untuk kelas lain tidak kena cek guru
	if _, err := svc.CreateEntry(context.Background(), EntryInput{
		SchoolID: uuid.New(), ClassID: uuid.New(), TeacherID: &teacher,
		Subject: "Istirahat", IsBreak: true, DayOfWeek: 3, Period: 1,
		StartTime: "07:00", EndTime: "07:15",
	}); err != nil {
		t.Fatalf("break entry should not trigger teacher conflict: %v", err)
	}
}

func TestUpdateEntryExcludesSelfFromConflictChecks(t *testing.T) {
	store := newFakeStore()
	svc := NewTimetableService(store)

	teacher := uuid.New()
	classA := uuid.New()
	entry, err := svc.CreateEntry(context.Background(), EntryInput{
		SchoolID: uuid.New(), ClassID: classA, TeacherID: &teacher,
		Subject: "Matematika", DayOfWeek: 1, Period: 5,
		StartTime: "11:00", EndTime: "11:45",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// ganti subject saja, slot tidak berubah → tidak boleh bentrok dengan dirinya
	updated, err := svc.UpdateEntry(context.Background(), entry.TimetableEntryID, EntryInput{
		SchoolID: entry.TimetableEntrySchoolID, ClassID: classA, TeacherID: &teacher,
		Subject: "Aljabar", DayOfWeek: 1, Period: 5,
		StartTime: "11:00", EndTime: "11:45",
	})
	if err != nil {
		t.Fatalf("update same slot: %v", err)
	}
	if updated.TimetableEntrySubject != "Aljabar" {
		t.Fatalf("subject not updated: %q", updated.TimetableEntrySubject)
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	svc := NewTimetableService(newFakeStore())
	_, err := svc.UpdateEntry(context.Background(), uuid.New(), EntryInput{
		ClassID: uuid.New(), TeacherID: ptr(uuid.New()),
		Subject: "Kimia", DayOfWeek: 1, Period: 1,
		StartTime: "07:00", EndTime: "07:45",
	})
	if err == nil || statusOf(t, err) != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestDayNameRoundTrip(t *testing.T) {
	for n := 1; n <= 7; n++ {
		name := m.DayName(n)
		if name == "" {
			t.Fatalf("no name for day %d", n)
		}
		if got := m.DayNumber(name); got != n {
			t.Fatalf("DayNumber(%s) = %d, want %d", name, got, n)
		}
	}
	if m.DayNumber("Funday") != 0 {
		t.Fatal("unknown day should map to 0")
	}
	if fmt.Sprintf("%s", m.DayName(0)) != "" {
		t.Fatal("day 0 should have empty name")
	}
}

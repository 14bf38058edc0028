package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

type slotKey struct {
	user   uuid.UUID
	date   time.Time
	period int
}

// fakeStore: in-memory Store; map per slot menegakkan invariant
// "maksimal satu record per (user, date, period)" seperti index unik di DB.
type fakeStore struct {
	slots     map[slotKey]*m.AttendanceRecordModel
	roster    map[uuid.UUID][]uuid.UUID
	failBatch error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:  map[slotKey]*m.AttendanceRecordModel{},
		roster: map[uuid.UUID][]uuid.UUID{},
	}
}

func (f *fakeStore) UpsertBatch(_ context.Context, records []m.AttendanceRecordModel) error {
	if f.failBatch != nil {
		return f.failBatch
	}
	for i := range records {
		rec := records[i]
		key := slotKey{rec.AttendanceUserID, rec.AttendanceDate, rec.AttendancePeriod}
		if existing, ok := f.slots[key]; ok {
			existing.AttendanceStatus = rec.AttendanceStatus
			existing.AttendanceMarkedBy = rec.AttendanceMarkedBy
			existing.AttendanceSchoolID = rec.AttendanceSchoolID
			continue
		}
		rec.AttendanceID = uuid.New()
		f.slots[key] = &rec
	}
	return nil
}

func (f *fakeStore) FindSlot(_ context.Context, userID uuid.UUID, date time.Time, period int) (*m.AttendanceRecordModel, error) {
	return f.slots[slotKey{userID, date, period}], nil
}

func (f *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*m.AttendanceRecordModel, error) {
	for _, rec := range f.slots {
		if rec.AttendanceID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Save(_ context.Context, rec *m.AttendanceRecordModel) error {
	f.slots[slotKey{rec.AttendanceUserID, rec.AttendanceDate, rec.AttendancePeriod}] = rec
	return nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID uuid.UUID) ([]m.AttendanceRecordModel, error) {
	var out []m.AttendanceRecordModel
	for _, rec := range f.slots {
		if rec.AttendanceUserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) ListForUsers(_ context.Context, userIDs []uuid.UUID, date *time.Time, period *int) ([]m.AttendanceRecordModel, error) {
	members := map[uuid.UUID]struct{}{}
	for _, id := range userIDs {
		members[id] = struct{}{}
	}
	var out []m.AttendanceRecordModel
	for _, rec := range f.slots {
		if _, ok := members[rec.AttendanceUserID]; !ok {
			continue
		}
		if date != nil && !rec.AttendanceDate.Equal(*date) {
			continue
		}
		if period != nil && rec.AttendancePeriod != *period {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeStore) ListPending(_ context.Context, schoolID uuid.UUID) ([]m.AttendanceRecordModel, error) {
	var out []m.AttendanceRecordModel
	for _, rec := range f.slots {
		if rec.AttendanceSchoolID == schoolID && rec.AttendanceRectStatus == m.RectificationPending {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) RosterUserIDs(_ context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	return f.roster[classID], nil
}

func (f *fakeStore) CountByStatus(_ context.Context, userID uuid.UUID) (map[m.AttendanceStatus]int64, error) {
	counts := map[m.AttendanceStatus]int64{}
	for _, rec := range f.slots {
		if rec.AttendanceUserID == userID {
			counts[rec.AttendanceStatus]++
		}
	}
	return counts, nil
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("expected *fiber.Error, got %T (%v)", err, err)
	}
	return fe.Code
}

var testDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestMarkUpsertLastWriteWins(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, staff := uuid.New(), uuid.New()
	user := uuid.New()

	in := MarkInput{
		SchoolID: school, MarkedBy: staff,
		Date: testDate, Period: 1,
		Status: m.AttendancePresent, UserIDs: []uuid.UUID{user},
	}
	if _, err := svc.Mark(context.Background(), in); err != nil {
		t.Fatalf("first mark: %v", err)
	}

	in.Status = m.AttendanceLate
	if _, err := svc.Mark(context.Background(), in); err != nil {
		t.Fatalf("second mark: %v", err)
	}

	if len(store.slots) != 1 {
		t.Fatalf("expected exactly one record per (user,date,period), got %d", len(store.slots))
	}
	rec := store.slots[slotKey{user, testDate, 1}]
	if rec.AttendanceStatus != m.AttendanceLate {
		t.Fatalf("last write should win, got %s", rec.AttendanceStatus)
	}
}

func TestMarkThreeStatusGroups(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, staff := uuid.New(), uuid.New()
	present := []uuid.UUID{uuid.New(), uuid.New()}
	absent := []uuid.UUID{uuid.New()}
	late := []uuid.UUID{uuid.New()}

	for _, group := range []struct {
		status m.AttendanceStatus
		ids    []uuid.UUID
	}{
		{m.AttendancePresent, present},
		{m.AttendanceAbsent, absent},
		{m.AttendanceLate, late},
	} {
		n, err := svc.Mark(context.Background(), MarkInput{
			SchoolID: school, MarkedBy: staff, Date: testDate, Period: 2,
			Status: group.status, UserIDs: group.ids,
		})
		if err != nil {
			t.Fatalf("mark %s: %v", group.status, err)
		}
		if n != len(group.ids) {
			t.Fatalf("mark %s: expected %d records, got %d", group.status, len(group.ids), n)
		}
	}

	if len(store.slots) != 4 {
		t.Fatalf("expected 4 records, got %d", len(store.slots))
	}
}

func TestMarkValidation(t *testing.T) {
	svc := NewAttendanceService(newFakeStore())
	base := MarkInput{
		SchoolID: uuid.New(), MarkedBy: uuid.New(), Date: testDate, Period: 1,
		Status: m.AttendancePresent, UserIDs: []uuid.UUID{uuid.New()},
	}

	bad := base
	bad.Status = "sakit"
	if _, err := svc.Mark(context.Background(), bad); err == nil || statusOf(t, err) != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %v", err)
	}

	bad = base
	bad.Period = 0
	if _, err := svc.Mark(context.Background(), bad); err == nil || statusOf(t, err) != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for period 0, got %v", err)
	}

	bad = base
	bad.UserIDs = nil
	if _, err := svc.Mark(context.Background(), bad); err == nil || statusOf(t, err) != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty user_ids, got %v", err)
	}
}

func TestMarkDeduplicatesBatch(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	user := uuid.New()

	n, err := svc.Mark(context.Background(), MarkInput{
		SchoolID: uuid.New(), MarkedBy: uuid.New(), Date: testDate, Period: 1,
		Status: m.AttendancePresent, UserIDs: []uuid.UUID{user, user, user},
	})
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 record after dedupe, got %d", n)
	}
}

func TestMarkBatchFailureIsAggregate(t *testing.T) {
	store := newFakeStore()
	store.failBatch = errors.New("connection reset")
	svc := NewAttendanceService(store)

	_, err := svc.Mark(context.Background(), MarkInput{
		SchoolID: uuid.New(), MarkedBy: uuid.New(), Date: testDate, Period: 1,
		Status: m.AttendancePresent, UserIDs: []uuid.UUID{uuid.New(), uuid.New()},
	})
	if err == nil || statusOf(t, err) != fiber.StatusInternalServerError {
		t.Fatalf("batch failure must surface as aggregate 500, got %v", err)
	}
	if len(store.slots) != 0 {
		t.Fatal("no record should be reported as written on batch failure")
	}
}

func TestListByClassFilters(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, staff, class := uuid.New(), uuid.New(), uuid.New()
	s1, s2 := uuid.New(), uuid.New()
	store.roster[class] = []uuid.UUID{s1, s2}

	for _, p := range []int{1, 2} {
		if _, err := svc.Mark(context.Background(), MarkInput{
			SchoolID: school, MarkedBy: staff, Date: testDate, Period: p,
			Status: m.AttendancePresent, UserIDs: []uuid.UUID{s1, s2},
		}); err != nil {
			t.Fatalf("mark period %d: %v", p, err)
		}
	}

	period := 2
	records, err := svc.ListByClass(context.Background(), class, &testDate, &period)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for period 2, got %d", len(records))
	}

	empty, err := svc.ListByClass(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("list unknown class: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("unknown class should have empty roster, got %d records", len(empty))
	}
}

func TestSummaryIncludesZeroCounts(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	user := uuid.New()

	if _, err := svc.Mark(context.Background(), MarkInput{
		SchoolID: uuid.New(), MarkedBy: uuid.New(), Date: testDate, Period: 1,
		Status: m.AttendanceLate, UserIDs: []uuid.UUID{user},
	}); err != nil {
		t.Fatalf("mark: %v", err)
	}

	counts, err := svc.Summary(context.Background(), user)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if counts[m.AttendanceLate] != 1 {
		t.Fatalf("expected 1 late, got %d", counts[m.AttendanceLate])
	}
	for _, st := range []m.AttendanceStatus{m.AttendancePresent, m.AttendanceAbsent, m.AttendanceHalfDay} {
		if got, ok := counts[st]; !ok || got != 0 {
			t.Fatalf("expected zero-filled count for %s, got %d (present=%v)", st, got, ok)
		}
	}
}

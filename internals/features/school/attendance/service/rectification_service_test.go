package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

func proposed(s m.AttendanceStatus) *m.AttendanceStatus { return &s }

func markOne(t *testing.T, svc *AttendanceService, school, user uuid.UUID, status m.AttendanceStatus) {
	t.Helper()
	if _, err := svc.Mark(context.Background(), MarkInput{
		SchoolID: school, MarkedBy: uuid.New(), Date: testDate, Period: 1,
		Status: status, UserIDs: []uuid.UUID{user},
	}); err != nil {
		t.Fatalf("mark: %v", err)
	}
}

func TestRequestRectificationNotFound(t *testing.T) {
	svc := NewAttendanceService(newFakeStore())
	_, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: uuid.New(), Date: testDate, Period: 1, Reason: "salah catat",
	})
	if err == nil || statusOf(t, err) != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing record, got %v", err)
	}
}

func TestRectificationApproveAppliesProposedStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, user := uuid.New(), uuid.New()

	// present, diajukan jadi absent, approve: status record ikut usulan
	markOne(t, svc, school, user, m.AttendancePresent)

	rec, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: user, Date: testDate, Period: 1,
		Reason: "izin sakit, surat menyusul", ProposedStatus: proposed(m.AttendanceAbsent),
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if rec.AttendanceRectStatus != m.RectificationPending || !rec.AttendanceRectRequested {
		t.Fatalf("expected pending request, got %+v", rec)
	}

	decided, err := svc.DecideRectification(context.Background(), rec.AttendanceID, school, m.RectificationApproved)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decided.AttendanceStatus != m.AttendanceAbsent {
		t.Fatalf("approved proposal should overwrite status, got %s", decided.AttendanceStatus)
	}
	if decided.AttendanceRectStatus != m.RectificationApproved {
		t.Fatalf("rect status should be approved, got %s", decided.AttendanceRectStatus)
	}
}

func TestRectificationRejectKeepsStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, user := uuid.New(), uuid.New()

	markOne(t, svc, school, user, m.AttendancePresent)

	rec, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: user, Date: testDate, Period: 1,
		Reason: "harusnya late", ProposedStatus: proposed(m.AttendanceLate),
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	decided, err := svc.DecideRectification(context.Background(), rec.AttendanceID, school, m.RectificationRejected)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decided.AttendanceStatus != m.AttendancePresent {
		t.Fatalf("rejected proposal must not change status, got %s", decided.AttendanceStatus)
	}
	if decided.AttendanceRectStatus != m.RectificationRejected {
		t.Fatalf("rect status should be rejected, got %s", decided.AttendanceRectStatus)
	}
}

func TestRectificationApproveWithoutProposalKeepsStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, user := uuid.New(), uuid.New()

	markOne(t, svc, school, user, m.AttendanceHalfDay)

	rec, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: user, Date: testDate, Period: 1, Reason: "cek ulang",
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	decided, err := svc.DecideRectification(context.Background(), rec.AttendanceID, school, m.RectificationApproved)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decided.AttendanceStatus != m.AttendanceHalfDay {
		t.Fatalf("approve without proposal must not change status, got %s", decided.AttendanceStatus)
	}
}

func TestRectificationReRequestResetsTerminalState(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, user := uuid.New(), uuid.New()

	markOne(t, svc, school, user, m.AttendancePresent)

	rec, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: user, Date: testDate, Period: 1,
		Reason: "pertama", ProposedStatus: proposed(m.AttendanceAbsent),
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := svc.DecideRectification(context.Background(), rec.AttendanceID, school, m.RectificationRejected); err != nil {
		t.Fatalf("decide: %v", err)
	}

	// state machine tidak one-shot: pengajuan ulang dari terminal kembali pending
	again, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: user, Date: testDate, Period: 1,
		Reason: "kedua", ProposedStatus: proposed(m.AttendanceLate),
	})
	if err != nil {
		t.Fatalf("re-request: %v", err)
	}
	if again.AttendanceRectStatus != m.RectificationPending {
		t.Fatalf("re-request should reset to pending, got %s", again.AttendanceRectStatus)
	}
	if again.AttendanceRectReason == nil || *again.AttendanceRectReason != "kedua" {
		t.Fatalf("re-request should overwrite reason, got %v", again.AttendanceRectReason)
	}
}

func TestDecideRectificationGuards(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, user := uuid.New(), uuid.New()

	markOne(t, svc, school, user, m.AttendancePresent)
	rec, _ := store.FindSlot(context.Background(), user, testDate, 1)

	// belum ada pengajuan
	if _, err := svc.DecideRectification(context.Background(), rec.AttendanceID, school, m.RectificationApproved); err == nil || statusOf(t, err) != fiber.StatusBadRequest {
		t.Fatalf("expected 400 deciding unrequested record, got %v", err)
	}

	// keputusan di luar {approved, rejected}
	if _, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: user, Date: testDate, Period: 1, Reason: "x",
	}); err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := svc.DecideRectification(context.Background(), rec.AttendanceID, school, m.RectificationPending); err == nil || statusOf(t, err) != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid decision, got %v", err)
	}

	// record tidak ada
	if _, err := svc.DecideRectification(context.Background(), uuid.New(), school, m.RectificationApproved); err == nil || statusOf(t, err) != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown record, got %v", err)
	}
}

func TestDecideRectificationTenantScoped(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	schoolA, schoolB, user := uuid.New(), uuid.New(), uuid.New()

	markOne(t, svc, schoolA, user, m.AttendancePresent)
	rec, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: user, Date: testDate, Period: 1,
		Reason: "salah catat", ProposedStatus: proposed(m.AttendanceAbsent),
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	// admin sekolah lain yang menebak UUID dapat 404, bukan record-nya
	if _, err := svc.DecideRectification(context.Background(), rec.AttendanceID, schoolB, m.RectificationApproved); err == nil || statusOf(t, err) != fiber.StatusNotFound {
		t.Fatalf("expected 404 for record of another school, got %v", err)
	}
	if rec.AttendanceRectStatus != m.RectificationPending || rec.AttendanceStatus != m.AttendancePresent {
		t.Fatalf("cross-tenant decide must not touch the record, got %+v", rec)
	}

	// tenant yang benar tetap bisa memutus
	decided, err := svc.DecideRectification(context.Background(), rec.AttendanceID, schoolA, m.RectificationApproved)
	if err != nil {
		t.Fatalf("decide same tenant: %v", err)
	}
	if decided.AttendanceStatus != m.AttendanceAbsent {
		t.Fatalf("expected approved proposal applied, got %s", decided.AttendanceStatus)
	}
}

func TestReMarkKeepsPendingRectification(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	school, user := uuid.New(), uuid.New()

	markOne(t, svc, school, user, m.AttendancePresent)
	if _, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
		UserID: user, Date: testDate, Period: 1,
		Reason: "harusnya sakit", ProposedStatus: proposed(m.AttendanceAbsent),
	}); err != nil {
		t.Fatalf("request: %v", err)
	}

	// upsert ulang slot yang sama hanya menimpa status/marked_by,
	// pengajuan yang masih pending tidak boleh ikut terhapus
	markOne(t, svc, school, user, m.AttendanceLate)

	rec, _ := store.FindSlot(context.Background(), user, testDate, 1)
	if rec.AttendanceStatus != m.AttendanceLate {
		t.Fatalf("re-mark should update status, got %s", rec.AttendanceStatus)
	}
	if !rec.AttendanceRectRequested || rec.AttendanceRectStatus != m.RectificationPending {
		t.Fatalf("re-mark must not clear pending rectification, got %+v", rec)
	}
	if rec.AttendanceRectReason == nil || *rec.AttendanceRectReason != "harusnya sakit" {
		t.Fatalf("re-mark must keep the request reason, got %v", rec.AttendanceRectReason)
	}
}

func TestListPendingScopedToSchool(t *testing.T) {
	store := newFakeStore()
	svc := NewAttendanceService(store)
	schoolA, schoolB := uuid.New(), uuid.New()
	userA, userB := uuid.New(), uuid.New()

	markOne(t, svc, schoolA, userA, m.AttendancePresent)
	markOne(t, svc, schoolB, userB, m.AttendancePresent)

	for _, u := range []uuid.UUID{userA, userB} {
		if _, err := svc.RequestRectification(context.Background(), RequestRectificationInput{
			UserID: u, Date: testDate, Period: 1, Reason: "salah",
		}); err != nil {
			t.Fatalf("request: %v", err)
		}
	}

	pending, err := svc.ListPendingRectifications(context.Background(), schoolA)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].AttendanceUserID != userA {
		t.Fatalf("pending list must be tenant-scoped, got %+v", pending)
	}
}

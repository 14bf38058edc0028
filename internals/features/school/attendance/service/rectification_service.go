// file: internals/features/school/attendance/service/rectification_service.go
package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

/* =========================================================
   State machine: unrequested → pending → {approved, rejected}

   Semua mutasi state lewat dua transisi bernama di bawah ini,
   bukan assignment field ad hoc di handler.
========================================================= */

// applyRequest: transisi → pending. Sengaja diizinkan dari state mana pun
// (termasuk approved/rejected): pengajuan ulang me-reset siklus, dan
// pengajuan saat masih pending menimpa pengajuan sebelumnya.
func applyRequest(rec *m.AttendanceRecordModel, reason string, proposed *m.AttendanceStatus) {
	rec.AttendanceRectRequested = true
	rec.AttendanceRectStatus = m.RectificationPending
	rec.AttendanceRectReason = &reason
	rec.AttendanceRectProposedStatus = proposed
}

// applyDecision: transisi pending → approved|rejected. Saat approved dan
// ada usulan status, status record ditimpa dengan usulan tersebut.
func applyDecision(rec *m.AttendanceRecordModel, decision m.RectificationStatus) error {
	if decision != m.RectificationApproved && decision != m.RectificationRejected {
		return fiber.NewError(fiber.StatusBadRequest, "Keputusan harus approved atau rejected")
	}
	if !rec.AttendanceRectRequested {
		return fiber.NewError(fiber.StatusBadRequest, "Record ini belum punya pengajuan rectification")
	}
	rec.AttendanceRectStatus = decision
	if decision == m.RectificationApproved && rec.AttendanceRectProposedStatus != nil {
		rec.AttendanceStatus = *rec.AttendanceRectProposedStatus
	}
	return nil
}

/* =========================================================
   Service ops
========================================================= */

type RequestRectificationInput struct {
	UserID         uuid.UUID
	Date           time.Time
	Period         int
	Reason         string
	ProposedStatus *m.AttendanceStatus
}

func (s *AttendanceService) RequestRectification(ctx context.Context, in RequestRectificationInput) (*m.AttendanceRecordModel, error) {
	if in.Period < 1 {
		in.Period = 1
	}
	if in.ProposedStatus != nil && !m.ValidAttendanceStatus(*in.ProposedStatus) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Usulan status tidak valid")
	}

	rec, err := s.store.FindSlot(ctx, in.UserID, normalizeDate(in.Date), in.Period)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil record absensi")
	}
	if rec == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Record absensi untuk tanggal/period tersebut tidak ditemukan")
	}

	applyRequest(rec, in.Reason, in.ProposedStatus)

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengajuan")
	}
	return rec, nil
}

// DecideRectification: lookup by ID dibatasi tenant pemanggil;
// record sekolah lain diperlakukan sama dengan tidak ada (404).
func (s *AttendanceService) DecideRectification(ctx context.Context, recordID, schoolID uuid.UUID, decision m.RectificationStatus) (*m.AttendanceRecordModel, error) {
	rec, err := s.store.FindByID(ctx, recordID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil record absensi")
	}
	if rec == nil || rec.AttendanceSchoolID != schoolID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Record absensi tidak ditemukan")
	}

	if err := applyDecision(rec, decision); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keputusan")
	}
	return rec, nil
}

func (s *AttendanceService) ListPendingRectifications(ctx context.Context, schoolID uuid.UUID) ([]m.AttendanceRecordModel, error) {
	records, err := s.store.ListPending(ctx, schoolID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar pengajuan")
	}
	return records, nil
}

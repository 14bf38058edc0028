// file: internals/features/school/attendance/service/gorm_store.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "sekolahku_backend/internals/features/school/attendance/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/constants"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// UpsertBatch: satu INSERT multi-row dengan ON CONFLICT pada kunci
// (user,date,period). Rectification tidak ikut di-assign: menimpa status
// lewat mark ulang tidak menghapus pengajuan yang sedang berjalan.
func (s *gormStore) UpsertBatch(ctx context.Context, records []m.AttendanceRecordModel) error {
	if len(records) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_user_id"},
				{Name: "attendance_date"},
				{Name: "attendance_period"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_status",
				"attendance_marked_by",
				"attendance_school_id",
				"attendance_updated_at",
			}),
		}).
		Create(&records).Error
}

func (s *gormStore) FindSlot(ctx context.Context, userID uuid.UUID, date time.Time, period int) (*m.AttendanceRecordModel, error) {
	var rec m.AttendanceRecordModel
	err := s.db.WithContext(ctx).
		Where("attendance_user_id = ? AND attendance_date = ? AND attendance_period = ?", userID, date, period).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *gormStore) FindByID(ctx context.Context, id uuid.UUID) (*m.AttendanceRecordModel, error) {
	var rec m.AttendanceRecordModel
	err := s.db.WithContext(ctx).
		Where("attendance_id = ?", id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *gormStore) Save(ctx context.Context, rec *m.AttendanceRecordModel) error {
	return s.db.WithContext(ctx).Save(rec).Error
}

func (s *gormStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]m.AttendanceRecordModel, error) {
	var records []m.AttendanceRecordModel
	err := s.db.WithContext(ctx).
		Where("attendance_user_id = ?", userID).
		Order("attendance_date DESC, attendance_period DESC").
		Find(&records).Error
	return records, err
}

func (s *gormStore) ListForUsers(ctx context.Context, userIDs []uuid.UUID, date *time.Time, period *int) ([]m.AttendanceRecordModel, error) {
	tx := s.db.WithContext(ctx).
		Where("attendance_user_id IN ?", userIDs)
	if date != nil {
		tx = tx.Where("attendance_date = ?", *date)
	}
	if period != nil {
		tx = tx.Where("attendance_period = ?", *period)
	}
	var records []m.AttendanceRecordModel
	err := tx.Order("attendance_date DESC, attendance_period ASC").Find(&records).Error
	return records, err
}

func (s *gormStore) ListPending(ctx context.Context, schoolID uuid.UUID) ([]m.AttendanceRecordModel, error) {
	var records []m.AttendanceRecordModel
	err := s.db.WithContext(ctx).
		Where("attendance_school_id = ? AND attendance_rect_status = ?", schoolID, m.RectificationPending).
		Order("attendance_updated_at DESC").
		Find(&records).Error
	return records, err
}

func (s *gormStore) RosterUserIDs(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("user_class_id = ? AND user_role = ? AND user_is_active = TRUE", classID, constants.RoleStudent).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (s *gormStore) CountByStatus(ctx context.Context, userID uuid.UUID) (map[m.AttendanceStatus]int64, error) {
	type row struct {
		Status m.AttendanceStatus `gorm:"column:attendance_status"`
		Total  int64              `gorm:"column:total"`
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Model(&m.AttendanceRecordModel{}).
		Select("attendance_status, COUNT(*) AS total").
		Where("attendance_user_id = ?", userID).
		Group("attendance_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[m.AttendanceStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

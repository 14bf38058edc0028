// file: internals/features/school/timetable/service/gorm_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	m "sekolahku_backend/internals/features/school/timetable/model"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindClassSlot(ctx context.Context, classID uuid.UUID, dayOfWeek, period int) (*m.TimetableEntryModel, error) {
	var entry m.TimetableEntryModel
	err := s.db.WithContext(ctx).
		Where("timetable_entry_class_id = ? AND timetable_entry_day_of_week = ? AND timetable_entry_period = ?",
			classID, dayOfWeek, period).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *gormStore) FindTeacherSlot(ctx context.Context, teacherID uuid.UUID, dayOfWeek, period int) (*m.TimetableEntryModel, error) {
	var entry m.TimetableEntryModel
	err := s.db.WithContext(ctx).
		Where("timetable_entry_teacher_id = ? AND timetable_entry_day_of_week = ? AND timetable_entry_period = ? AND timetable_entry_is_break = FALSE",
			teacherID, dayOfWeek, period).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *gormStore) FindByID(ctx context.Context, id uuid.UUID) (*m.TimetableEntryModel, error) {
	var entry m.TimetableEntryModel
	err := s.db.WithContext(ctx).
		Where("timetable_entry_id = ?", id).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *gormStore) ClassName(ctx context.Context, classID uuid.UUID) (string, error) {
	var class classModel.ClassModel
	err := s.db.WithContext(ctx).
		Select("class_name").
		Where("class_id = ?", classID).
		First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return class.ClassName, nil
}

func (s *gormStore) Insert(ctx context.Context, entry *m.TimetableEntryModel) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *gormStore) Save(ctx context.Context, entry *m.TimetableEntryModel) error {
	return s.db.WithContext(ctx).Save(entry).Error
}

func (s *gormStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("timetable_entry_id = ?", id).
		Delete(&m.TimetableEntryModel{}).Error
}

// file: internals/features/school/schools/service/cascade_delete_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	announcementModel "sekolahku_backend/internals/features/school/announcements/model"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	homeworkModel "sekolahku_backend/internals/features/school/homework/model"
	resultModel "sekolahku_backend/internals/features/school/results/model"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	timetableModel "sekolahku_backend/internals/features/school/timetable/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// DeleteSchoolCascade menghapus satu tenant beserta seluruh datanya dalam
// SATU transaksi: crash di tengah tidak meninggalkan record yatim.
func DeleteSchoolCascade(ctx context.Context, db *gorm.DB, schoolID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			column string
			model  any
		}{
			{"attendance_school_id", &attendanceModel.AttendanceRecordModel{}},
			{"timetable_entry_school_id", &timetableModel.TimetableEntryModel{}},
			{"homework_school_id", &homeworkModel.HomeworkModel{}},
			{"result_school_id", &resultModel.ResultModel{}},
			{"announcement_school_id", &announcementModel.AnnouncementModel{}},
			{"class_school_id", &classModel.ClassModel{}},
			{"user_school_id", &userModel.UserModel{}},
		}
		for _, step := range steps {
			if err := tx.Where(step.column+" = ?", schoolID).Delete(step.model).Error; err != nil {
				return err
			}
		}
		return tx.Where("school_id = ?", schoolID).Delete(&schoolModel.SchoolModel{}).Error
	})
}

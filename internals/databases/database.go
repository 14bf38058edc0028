package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
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

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua model inti.
// Index unik komposit (attendance & timetable) dideklarasikan di tag model,
// kecuali partial unique index guru yang butuh SQL mentah.
func Migrate() {
	if err := DB.AutoMigrate(
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&timetableModel.TimetableEntryModel{},
		&attendanceModel.AttendanceRecordModel{},
		&homeworkModel.HomeworkModel{},
		&resultModel.ResultModel{},
		&announcementModel.AnnouncementModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	// Guru tidak boleh double-book pada (day_of_week, period) lintas kelas.
	// Partial unique: entri break (teacher NULL) tidak ikut di-index.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_timetable_teacher_slot
		ON timetable_entries (timetable_entry_teacher_id, timetable_entry_day_of_week, timetable_entry_period)
		WHERE timetable_entry_is_break = FALSE AND timetable_entry_teacher_id IS NOT NULL
	`).Error; err != nil {
		log.Fatalf("❌ Gagal membuat index uq_timetable_teacher_slot: %v", err)
	}

	log.Println("✅ Migrasi selesai.")
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// file: internals/features/school/announcements/service/audience_service.go
package service

import (
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/announcements/model"
)

// VisibleTo: pengumuman tampil bila audience kosong (broadcast) atau memuat
// role pembaca, DAN scope kelasnya cocok (nil = seluruh sekolah).
func VisibleTo(a *m.AnnouncementModel, role string, classID *uuid.UUID) bool {
	if !roleMatches(a.AnnouncementAudience, role) {
		return false
	}
	if a.AnnouncementClassID == nil {
		return true
	}
	return classID != nil && *classID == *a.AnnouncementClassID
}

func roleMatches(audience []string, role string) bool {
	if len(audience) == 0 {
		return true
	}
	for _, r := range audience {
		if r == role {
			return true
		}
	}
	return false
}

// FilterVisible menyaring daftar pengumuman untuk satu pembaca.
// Staff melihat semuanya tanpa filter; fungsi ini untuk student/parent.
func FilterVisible(all []m.AnnouncementModel, role string, classID *uuid.UUID) []m.AnnouncementModel {
	out := make([]m.AnnouncementModel, 0, len(all))
	for i := range all {
		if VisibleTo(&all[i], role, classID) {
			out = append(out, all[i])
		}
	}
	return out
}

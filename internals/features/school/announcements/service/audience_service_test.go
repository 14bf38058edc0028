// file: internals/features/school/announcements/service/audience_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/announcements/model"
)

func TestVisibleTo(t *testing.T) {
	classA := uuid.New()
	classB := uuid.New()

	cases := []struct {
		name    string
		ann     m.AnnouncementModel
		role    string
		classID *uuid.UUID
		want    bool
	}{
		{
			name: "broadcast tanpa audience tampil untuk semua",
			ann:  m.AnnouncementModel{},
			role: "student",
			want: true,
		},
		{
			name: "audience student tidak tampil untuk parent",
			ann:  m.AnnouncementModel{AnnouncementAudience: []string{"student"}},
			role: "parent",
			want: false,
		},
		{
			name: "audience multi-role tampil untuk parent",
			ann:  m.AnnouncementModel{AnnouncementAudience: []string{"student", "parent"}},
			role: "parent",
			want: true,
		},
		{
			name:    "scope kelas cocok",
			ann:     m.AnnouncementModel{AnnouncementClassID: &classA},
			role:    "student",
			classID: &classA,
			want:    true,
		},
		{
			name:    "scope kelas beda tidak tampil",
			ann:     m.AnnouncementModel{AnnouncementClassID: &classA},
			role:    "student",
			classID: &classB,
			want:    false,
		},
		{
			name: "scope kelas tapi pembaca tanpa kelas",
			ann:  m.AnnouncementModel{AnnouncementClassID: &classA},
			role: "student",
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VisibleTo(&tc.ann, tc.role, tc.classID); got != tc.want {
				t.Fatalf("VisibleTo = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterVisible(t *testing.T) {
	classA := uuid.New()
	all := []m.AnnouncementModel{
		{AnnouncementTitle: "umum"},
		{AnnouncementTitle: "guru saja", AnnouncementAudience: []string{"teacher"}},
		{AnnouncementTitle: "kelas A", AnnouncementClassID: &classA},
	}

	got := FilterVisible(all, "student", &classA)
	if len(got) != 2 {
		t.Fatalf("FilterVisible = %d pengumuman, want 2", len(got))
	}
	if got[0].AnnouncementTitle != "umum" || got[1].AnnouncementTitle != "kelas A" {
		t.Fatalf("FilterVisible salah isi: %+v", got)
	}
}

// internals/helpers/auth/capability.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// Action: satu aksi yang bisa digate per role. Daripada cek string role
// tersebar di tiap handler, tabel kapabilitas dicek sekali di boundary.
type Action string

const (
	ActionManageSchools       Action = "schools:manage"
	ActionManageOwnSchool     Action = "schools:manage_own"
	ActionManageUsers         Action = "users:manage"
	ActionManageClasses       Action = "classes:manage"
	ActionManageTimetable     Action = "timetable:manage"
	ActionViewTimetable       Action = "timetable:view"
	ActionViewTeacherSchedule Action = "timetable:view_teacher"
	ActionMarkAttendance      Action = "attendance:mark"
	ActionViewClassAttendance Action = "attendance:view_class"
	ActionRequestRectify      Action = "attendance:rectify_request"
	ActionDecideRectify       Action = "attendance:rectify_decide"
	ActionManageHomework      Action = "homework:manage"
	ActionViewHomework        Action = "homework:view"
	ActionManageResults       Action = "results:manage"
	ActionViewResults         Action = "results:view"
	ActionManageAnnouncements Action = "announcements:manage"
	ActionViewAnnouncements   Action = "announcements:view"
)

var capabilities = map[string]map[Action]struct{}{
	constants.RoleOwner: setOf(
		ActionManageSchools, ActionManageOwnSchool, ActionManageUsers, ActionManageClasses,
		ActionManageTimetable, ActionViewTimetable, ActionViewTeacherSchedule,
		ActionMarkAttendance, ActionViewClassAttendance, ActionDecideRectify,
		ActionManageHomework, ActionViewHomework,
		ActionManageResults, ActionViewResults,
		ActionManageAnnouncements, ActionViewAnnouncements,
	),
	constants.RoleAdmin: setOf(
		ActionManageOwnSchool, ActionManageUsers, ActionManageClasses,
		ActionManageTimetable, ActionViewTimetable, ActionViewTeacherSchedule,
		ActionMarkAttendance, ActionViewClassAttendance, ActionDecideRectify,
		ActionManageHomework, ActionViewHomework,
		ActionManageResults, ActionViewResults,
		ActionManageAnnouncements, ActionViewAnnouncements,
	),
	constants.RoleTeacher: setOf(
		ActionViewTimetable, ActionViewTeacherSchedule,
		ActionMarkAttendance, ActionViewClassAttendance, ActionRequestRectify,
		ActionManageHomework, ActionViewHomework,
		ActionManageResults, ActionViewResults,
		ActionViewAnnouncements,
	),
	constants.RoleStudent: setOf(
		ActionViewTimetable, ActionRequestRectify,
		ActionViewHomework, ActionViewResults, ActionViewAnnouncements,
	),
	constants.RoleParent: setOf(
		ActionViewTimetable,
		ActionViewHomework, ActionViewResults, ActionViewAnnouncements,
	),
}

func setOf(actions ...Action) map[Action]struct{} {
	m := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		m[a] = struct{}{}
	}
	return m
}

func Can(role string, action Action) bool {
	acts, ok := capabilities[role]
	if !ok {
		return false
	}
	_, ok = acts[action]
	return ok
}

// CanAssignRole: siapa boleh membuat akun dengan role apa.
// Owner boleh semua; admin hanya role non-privileged di sekolahnya.
func CanAssignRole(callerRole, newRole string) bool {
	switch callerRole {
	case constants.RoleOwner:
		return constants.IsValidRole(newRole)
	case constants.RoleAdmin:
		switch newRole {
		case constants.RoleTeacher, constants.RoleStudent, constants.RoleParent:
			return true
		}
	}
	return false
}

// EnsureCan: gate per-handler. 401 kalau role tidak ada, 403 kalau tidak berhak.
func EnsureCan(c *fiber.Ctx, action Action) error {
	role := GetRole(c)
	if role == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	if !Can(role, action) {
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
	return nil
}

// EnsureCanViewAttendance: student hanya boleh membaca miliknya sendiri,
// parent hanya anak yang tertaut; staff bebas (lookup by explicit user id).
func EnsureCanViewAttendance(c *fiber.Ctx, targetUserID uuid.UUID) error {
	switch GetRole(c) {
	case constants.RoleOwner, constants.RoleAdmin, constants.RoleTeacher:
		return nil
	case constants.RoleStudent:
		uid, err := GetUserIDFromToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		if uid != targetUserID {
			return fiber.NewError(fiber.StatusForbidden, "Siswa hanya boleh melihat absensinya sendiri")
		}
		return nil
	case constants.RoleParent:
		for _, child := range GetChildIDsFromToken(c) {
			if child == targetUserID {
				return nil
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Parent hanya boleh melihat absensi anak yang tertaut")
	default:
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
}

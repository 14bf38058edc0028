package constants

import "fmt"

// Role global (disimpan di kolom users.user_role dan klaim JWT "role").
const (
	RoleOwner   = "owner" // super admin lintas sekolah
	RoleAdmin   = "admin" // kepala sekolah / admin sekolah
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya admin atau teacher yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}

	StaffRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleTeacher,
	}

	AdminRoles = []string{
		RoleOwner,
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

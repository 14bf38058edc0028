package auth

import (
	"testing"

	"sekolahku_backend/internals/constants"
)

func TestCan(t *testing.T) {
	cases := []struct {
		role   string
		action Action
		want   bool
	}{
		{constants.RoleOwner, ActionManageSchools, true},
		{constants.RoleAdmin, ActionManageSchools, false},
		{constants.RoleAdmin, ActionManageTimetable, true},
		{constants.RoleAdmin, ActionDecideRectify, true},
		{constants.RoleTeacher, ActionManageTimetable, false},
		{constants.RoleTeacher, ActionMarkAttendance, true},
		{constants.RoleTeacher, ActionRequestRectify, true},
		{constants.RoleTeacher, ActionDecideRectify, false},
		{constants.RoleStudent, ActionRequestRectify, true},
		{constants.RoleStudent, ActionMarkAttendance, false},
		{constants.RoleParent, ActionViewResults, true},
		{constants.RoleParent, ActionViewClassAttendance, false},
		{"", ActionViewTimetable, false},
		{"unknown", ActionViewTimetable, false},
	}
	for _, tt := range cases {
		if got := Can(tt.role, tt.action); got != tt.want {
			t.Errorf("Can(%q, %q) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestCanAssignRole(t *testing.T) {
	cases := []struct {
		caller string
		target string
		want   bool
	}{
		{constants.RoleOwner, constants.RoleOwner, true},
		{constants.RoleOwner, constants.RoleAdmin, true},
		{constants.RoleOwner, constants.RoleStudent, true},
		{constants.RoleAdmin, constants.RoleTeacher, true},
		{constants.RoleAdmin, constants.RoleStudent, true},
		{constants.RoleAdmin, constants.RoleParent, true},
		{constants.RoleAdmin, constants.RoleAdmin, false},
		{constants.RoleAdmin, constants.RoleOwner, false},
		{constants.RoleTeacher, constants.RoleStudent, false},
		{constants.RoleStudent, constants.RoleStudent, false},
		{constants.RoleOwner, "bendahara", false},
		{"", constants.RoleStudent, false},
	}
	for _, tt := range cases {
		if got := CanAssignRole(tt.caller, tt.target); got != tt.want {
			t.Errorf("CanAssignRole(%q, %q) = %v, want %v", tt.caller, tt.target, got, tt.want)
		}
	}
}

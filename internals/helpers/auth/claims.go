// internals/helpers/auth/claims.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

var (
	ErrUserIDMissing   = errors.New("user_id tidak ditemukan di token")
	ErrSchoolIDMissing = errors.New("school_id tidak ditemukan di token")
)

// GetUserIDFromToken membaca Locals("user_id") yang diisi AuthMiddleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, ErrUserIDMissing
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrUserIDMissing
	}
	return id, nil
}

// GetSchoolIDFromToken membaca tenant aktif (Locals("school_id")).
// Owner global boleh tidak punya scope sekolah.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("school_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, ErrSchoolIDMissing
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrSchoolIDMissing
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}

// GetChildIDsFromToken mengembalikan daftar anak yang tertaut pada akun parent.
func GetChildIDsFromToken(c *fiber.Ctx) []uuid.UUID {
	raw, ok := c.Locals("child_ids").([]string)
	if !ok {
		return nil
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			out = append(out, id)
		}
	}
	return out
}

func IsOwner(c *fiber.Ctx) bool   { return GetRole(c) == constants.RoleOwner }
func IsAdmin(c *fiber.Ctx) bool   { return GetRole(c) == constants.RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleTeacher }
func IsStudent(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleStudent }
func IsParent(c *fiber.Ctx) bool  { return GetRole(c) == constants.RoleParent }

func IsStaff(c *fiber.Ctx) bool {
	switch GetRole(c) {
	case constants.RoleOwner, constants.RoleAdmin, constants.RoleTeacher:
		return true
	}
	return false
}

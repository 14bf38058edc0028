package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
)

func newRoleApp(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/guarded", gate, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestOnlyRoles(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"admin lolos gate admin", constants.RoleAdmin, constants.AdminRoles, fiber.StatusOK},
		{"owner lolos gate admin", constants.RoleOwner, constants.AdminRoles, fiber.StatusOK},
		{"student ditolak gate admin", constants.RoleStudent, constants.AdminRoles, fiber.StatusForbidden},
		{"teacher lolos gate staff", constants.RoleTeacher, constants.StaffRoles, fiber.StatusOK},
		{"parent ditolak gate owner", constants.RoleParent, []string{constants.RoleOwner}, fiber.StatusForbidden},
		{"tanpa role = 401", "", constants.AdminRoles, fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newRoleApp(tc.role, OnlyRoles(constants.RoleErrorAdmin("tes"), tc.allowed...))
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			if err != nil {
				t.Fatalf("test request: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

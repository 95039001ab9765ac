package handler

import (
	"net/http/httptest"
	"testing"

	"learnbyte/internal/domain"
	"learnbyte/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(role string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(middleware.UserIDKey, "u1")
			c.Locals(middleware.UserRoleKey, role)
		}
		return c.Next()
	})
	app.Get("/admin-only", func(c *fiber.Ctx) error {
		if err := RequireRole(c, domain.RoleAdmin); err != nil {
			return err
		}
		return c.SendString("ok")
	})
	return app
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	app := newTestApp("admin")

	resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_StudentForbidden(t *testing.T) {
	app := newTestApp("student")

	resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_AnonymousForbidden(t *testing.T) {
	app := newTestApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

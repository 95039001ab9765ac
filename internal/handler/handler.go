package handler

import (
	"learnbyte/internal/domain"
	"learnbyte/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RequireRole checks that the authenticated user carries the given role.
// Handlers call it at the top of role-gated operations; the returned error
// (if any) goes straight to the error middleware.
func RequireRole(c *fiber.Ctx, role domain.Role) error {
	current, _ := c.Locals(middleware.UserRoleKey).(string)
	if current != string(role) {
		return domain.NewForbiddenError("insufficient role for this operation")
	}
	return nil
}

// currentUserID returns the authenticated user's id from the request locals.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.UserIDKey).(string)
	return id
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/develop-free/server-site/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	api := app.Group("/api")
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Post("/refresh-token", h.Refresh)
	api.Post("/logout", h.Authenticate, h.Logout)
	api.Post("/logout-all", h.Authenticate, h.LogoutAll)
	api.Get("/check", h.Authenticate, h.Check)

	// Admin-only endpoints
	admin := app.Group("/api/admin", h.Authenticate, h.RequireRole(constant.RoleAdmin))
	admin.Get("/users", h.GetAllUsers)
	admin.Patch("/users/:id/role", h.UpdateUserRole)
	admin.Delete("/users/:id/sessions", h.ForceLogout)
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/develop-free/server-site/internal/auth/dto"
)

func (h *AuthHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": users,
	})
}

func (h *AuthHandler) UpdateUserRole(c *fiber.Ctx) error {
	var input dto.UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, validationError(err))
	}
	if err := h.validator.Struct(input); err != nil {
		return errorResponse(c, validationError(err))
	}

	if err := h.userService.UpdateRole(c.UserContext(), c.Params("id"), input.Role); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "role updated",
	})
}

// ForceLogout invalidates every session of the target user.
func (h *AuthHandler) ForceLogout(c *fiber.Ctx) error {
	if err := h.userService.LogoutAll(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "sessions cleared",
	})
}

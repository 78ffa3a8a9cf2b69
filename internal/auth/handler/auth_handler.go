package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/develop-free/server-site/config"
	"github.com/develop-free/server-site/internal/auth/dto"
	"github.com/develop-free/server-site/internal/auth/service"
	apperr "github.com/develop-free/server-site/internal/errors"
	"github.com/develop-free/server-site/pkg/constant"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
	cfg          *config.Config
	validator    *validator.Validate
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
		cfg:          cfg,
		validator:    validator.New(),
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, apperr.ErrValidation)
	}
	if err := h.validator.Struct(input); err != nil {
		return errorResponse(c, validationError(err))
	}

	resp, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	h.setRefreshCookie(c, resp.RefreshToken)

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, apperr.ErrMissingFields)
	}

	resp, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	h.setRefreshCookie(c, resp.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(constant.RefreshTokenCookie)
	if refreshToken == "" {
		return errorResponse(c, apperr.ErrMissingToken)
	}

	resp, err := h.userService.Refresh(c.UserContext(), refreshToken)
	if err != nil {
		return errorResponse(c, err)
	}

	h.setRefreshCookie(c, resp.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"accessToken": resp.AccessToken,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals(constant.LocalsUserID).(string)
	refreshToken := c.Cookies(constant.RefreshTokenCookie)

	if err := h.userService.Logout(c.UserContext(), userID, refreshToken); err != nil {
		return errorResponse(c, err)
	}

	h.clearRefreshCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "logged out",
	})
}

func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	userID, _ := c.Locals(constant.LocalsUserID).(string)

	if err := h.userService.LogoutAll(c.UserContext(), userID); err != nil {
		return errorResponse(c, err)
	}

	h.clearRefreshCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "logged out everywhere",
	})
}

// Check is a liveness probe for the caller's access token: it answers with
// the identity's public fields while the token is still valid.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	userID, _ := c.Locals(constant.LocalsUserID).(string)

	user, err := h.userService.Profile(c.UserContext(), userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenService.GetRefreshTokenExpiry().Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

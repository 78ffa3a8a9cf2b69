package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperr "github.com/develop-free/server-site/internal/errors"
	"github.com/develop-free/server-site/pkg/constant"
)

// Authenticate validates the bearer token and attaches the decoded identity
// to the request locals. Collaborator modules read only those locals; they
// never touch the credential store or token service directly.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return errorResponse(c, apperr.ErrMissingToken)
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return errorResponse(c, apperr.ErrMissingToken)
	}

	claims, err := h.tokenService.VerifyAccessToken(token)
	if err != nil {
		return errorResponse(c, apperr.ErrInvalidToken)
	}

	c.Locals(constant.LocalsUserID, claims.UserID)
	c.Locals(constant.LocalsUserRole, claims.Role)

	// Hint to the client that it should refresh soon. Never blocks.
	if claims.NearExpiry {
		c.Set("X-Token-Expiring", "true")
	}

	return c.Next()
}

// RequireRole gates a route to the given roles. Must run after Authenticate.
func (h *AuthHandler) RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(constant.LocalsUserRole).(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return errorResponse(c, apperr.ErrForbidden)
	}
}

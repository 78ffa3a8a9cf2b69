package dto

import "time"

// AuthResponse is the body returned by register, login and refresh. The
// refresh token travels only in the HttpOnly cookie, never in the body.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
	Login        string `json:"login,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
}

type UserOutput struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateRoleInput struct {
	Role string `json:"role" validate:"required,oneof=user teacher admin"`
}

package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/develop-free/server-site/internal/auth/domain UserRepository

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	// GetByLoginOrEmail matches either column and includes the password hash.
	// Returns (nil, nil) when no user matches.
	GetByLoginOrEmail(ctx context.Context, login, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByRefreshToken(ctx context.Context, token string) (*User, error)

	AddRefreshToken(ctx context.Context, rt *RefreshToken) error
	// RotateRefreshToken removes oldToken and inserts newToken for the same
	// user in a single statement. Returns false when oldToken was not present
	// (already consumed or never issued).
	RotateRefreshToken(ctx context.Context, oldToken, newToken string) (bool, error)
	RemoveRefreshToken(ctx context.Context, userID, token string) error
	ClearRefreshTokens(ctx context.Context, userID string) error

	ListUsers(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, userID, role string) error
}

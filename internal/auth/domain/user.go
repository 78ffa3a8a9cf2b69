package domain

import "time"

// User is the credential store entity. PasswordHash is populated only by the
// credential-path lookup (GetByLoginOrEmail); every other read leaves it empty
// so the hash cannot leak through generic endpoints.
type User struct {
	ID           string
	Login        string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// RefreshToken is one entry of a user's active-session collection. A user may
// hold several at once (one per device); each is removed exactly once, at
// logout or rotation.
type RefreshToken struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

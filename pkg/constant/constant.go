package constant

import "time"

const (
	RoleUser    = "user"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

const (
	RefreshTokenCookie = "refreshToken"
	DefaultTokenType   = "Bearer"

	// Locals keys under which the auth middleware stores the verified identity.
	LocalsUserID   = "userID"
	LocalsUserRole = "userRole"
)

// NearExpiryThreshold is the remaining lifetime under which a verified token
// is flagged as about to expire. Advisory only.
const NearExpiryThreshold = 5 * time.Minute

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

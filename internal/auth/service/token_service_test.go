package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/develop-free/server-site/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	assert.Equal(t, "access-secret", ts.AccessTokenSecret)
	assert.Equal(t, "refresh-secret", ts.RefreshTokenSecret)
	assert.Equal(t, 15*time.Minute, ts.AccessTokenExpiry)
	assert.Equal(t, 10080*time.Minute, ts.RefreshTokenExpiry)
}

func TestTokenService_Generate(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		role   string
	}{
		{name: "user role", userID: "user-123", role: "user"},
		{name: "admin role", userID: "admin-456", role: "admin"},
		{name: "teacher role", userID: "teacher-789", role: "teacher"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService("test-access-secret", "test-refresh-secret", 15, 1440)

			accessToken, refreshToken, err := ts.Generate(tt.userID, tt.role)
			require.NoError(t, err)
			require.NotEmpty(t, accessToken)
			require.NotEmpty(t, refreshToken)
			assert.NotEqual(t, accessToken, refreshToken)

			// The decoded payload carries the issuing user's id and role.
			claims, err := ts.VerifyAccessToken(accessToken)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)

			refreshClaims, err := ts.VerifyRefreshToken(refreshToken)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, refreshClaims.UserID)
		})
	}
}

func TestTokenService_SecretsAreIndependent(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 1440)

	accessToken, refreshToken, err := ts.Generate("user-123", "user")
	require.NoError(t, err)

	// A token verified against the other class's secret must fail.
	_, err = ts.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)

	_, err = ts.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestTokenService_Verify(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 1440)

	t.Run("malformed token", func(t *testing.T) {
		_, err := ts.VerifyAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("different-secret", "refresh-secret", 15, 1440)
		accessToken, _, err := other.Generate("user-123", "user")
		require.NoError(t, err)

		_, err = ts.VerifyAccessToken(accessToken)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenService("access-secret", "refresh-secret", -1, 1440)
		accessToken, _, err := expired.Generate("user-123", "user")
		require.NoError(t, err)

		_, err = ts.VerifyAccessToken(accessToken)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("unexpected signing method rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": "user-123"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ts.VerifyAccessToken(signed)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})
}

func TestTokenService_NearExpiry(t *testing.T) {
	t.Run("flag set under threshold", func(t *testing.T) {
		ts := NewTokenService("access-secret", "refresh-secret", 1, 1440)
		accessToken, _, err := ts.Generate("user-123", "user")
		require.NoError(t, err)

		claims, err := ts.VerifyAccessToken(accessToken)
		require.NoError(t, err)
		assert.True(t, claims.NearExpiry)
	})

	t.Run("flag clear with plenty of lifetime", func(t *testing.T) {
		ts := NewTokenService("access-secret", "refresh-secret", 60, 1440)
		accessToken, _, err := ts.Generate("user-123", "user")
		require.NoError(t, err)

		claims, err := ts.VerifyAccessToken(accessToken)
		require.NoError(t, err)
		assert.False(t, claims.NearExpiry)
	})
}

func TestTokenService_Getters(t *testing.T) {
	ts := &TokenService{
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}

	assert.Equal(t, 15*time.Minute, ts.GetAccessTokenExpiry())
	assert.Equal(t, 7*24*time.Hour, ts.GetRefreshTokenExpiry())
}

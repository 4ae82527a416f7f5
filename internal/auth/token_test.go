package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ajussi_backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 60)

	token, err := manager.Generate("user-123", models.UserRoleAjussi)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleAjussi, claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret", -1)

	token, err := manager.Generate("user-123", models.UserRoleClient)
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", 60).Generate("user-123", models.UserRoleClient)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 60).Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", 60)
	_, err := manager.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewManager("unit-test-secret", 1)

	token, err := manager.GenerateToken("64f000000000000000000001", "admin@example.com", "super-admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "super-admin", claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 1).GenerateToken("id", "a@b.com", "admin")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 1).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", 1).ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

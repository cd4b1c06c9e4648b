package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", 24*time.Hour)

	token, err := m.GenerateToken("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	m := NewManager("secret-a", 24*time.Hour)
	token, err := m.GenerateToken("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)

	other := NewManager("secret-b", 24*time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	token, err := m.GenerateToken("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	m := NewManager("test-secret", 24*time.Hour)
	_, err := m.ValidateToken("not-a-token")
	assert.Error(t, err)
}

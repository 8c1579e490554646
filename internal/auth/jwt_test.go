package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("user-1", "admin@hotel.example")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "admin@hotel.example", claims.Email)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-1", "admin@hotel.example")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateAccessToken("user-1", "a@b.example")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).ParseAndValidate(token)
	require.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(4)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.NoError(t, h.Compare(hash, "correct horse"))
	require.Error(t, h.Compare(hash, "wrong password"))
}

package local

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestVerifier_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "uid-123",
		"email": "dev@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := NewVerifier(testSecret).Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "uid-123", identity.UID)
	assert.Equal(t, "dev@example.com", identity.Email)
}

func TestVerifier_MissingEmailIsAllowed(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := NewVerifier(testSecret).Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "uid-123", identity.UID)
	assert.Empty(t, identity.Email)
}

func TestVerifier_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewVerifier(testSecret).Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestVerifier_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := NewVerifier(testSecret).Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestVerifier_ExpirationRequired(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "uid-123"})

	_, err := NewVerifier(testSecret).Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestVerifier_MissingSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewVerifier(testSecret).Verify(context.Background(), token)
	assert.Error(t, err)
}

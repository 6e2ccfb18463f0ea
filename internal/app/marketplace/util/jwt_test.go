package util

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateToken_RoundTrip(t *testing.T) {
	// Arrange
	jwtManager := NewJWTManager("test-secret-key")
	userID := "507f1f77bcf86cd799439011"

	// Act
	token, err := jwtManager.GenerateToken(userID)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
}

func TestJWTManager_TokenHasNoExpiry(t *testing.T) {
	// Arrange
	jwtManager := NewJWTManager("test-secret-key")

	// Act
	token, err := jwtManager.GenerateToken("user-1")
	require.NoError(t, err)

	// Assert - у токена нет срока действия
	claims, err := jwtManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTManager_ValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	token, err := NewJWTManager("secret-a").GenerateToken("user-1")
	require.NoError(t, err)

	// Act
	claims, err := NewJWTManager("secret-b").ValidateToken(token)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTManager_ValidateToken_Garbage(t *testing.T) {
	claims, err := NewJWTManager("test-secret-key").ValidateToken("not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTManager_ValidateToken_RejectsNonHMAC(t *testing.T) {
	// Arrange - токен с alg=none должен быть отвергнут
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	// Act
	claims, err := NewJWTManager("test-secret-key").ValidateToken(signed)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

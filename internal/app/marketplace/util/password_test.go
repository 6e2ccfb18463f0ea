package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Success(t *testing.T) {
	// Arrange
	password := "mysecretpassword123"

	// Act
	hash, err := HashPassword(password)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash) // Хэш не должен совпадать с паролем
}

func TestHashPassword_DifferentHashesForSamePassword(t *testing.T) {
	// Arrange
	password := "mysecretpassword123"

	// Act
	hash1, err1 := HashPassword(password)
	hash2, err2 := HashPassword(password)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, hash1, hash2) // bcrypt использует random salt, поэтому хэши разные
}

func TestCheckPassword_Match(t *testing.T) {
	// Arrange
	password := "admin"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	// Act & Assert
	assert.True(t, CheckPassword(password, hash))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	// Arrange
	hash, err := HashPassword("admin")
	require.NoError(t, err)

	// Act & Assert
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	// Сравнение с мусором вместо хэша не должно паниковать
	assert.False(t, CheckPassword("admin", "not-a-bcrypt-hash"))
}

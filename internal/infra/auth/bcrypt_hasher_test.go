package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bizdesk/config"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/errors"
)

var strictPolicy = &config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        64,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
	RequireSpecial:   true,
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, nil)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw", hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check("pw", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, nil)

	first, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("s3cret", first))
	assert.True(t, hasher.Check("s3cret", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, nil)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, nil)

	_, err := hasher.Hash(strings.Repeat("a", 100))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: customCost}})

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_ValidatePasswordStrength_NoPolicy(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, nil)

	assert.NoError(t, hasher.ValidatePasswordStrength("pw"))

	err := hasher.ValidatePasswordStrength("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("x", 73)))
}

func TestBcryptHasher_ValidatePasswordStrength_Policy(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, strictPolicy)

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Valid$Phrase2024",
	}

	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PasswordABC!", "must contain at least one number"},
		{"Password123", "must contain at least one special character"},
		{"Password123!", "contains forbidden words"},
		{"MyAdmin123!", "contains forbidden words"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, "Expected error for password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.HTTPCode())
	}
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"bizdesk/config"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/domain/service"
	"bizdesk/internal/errors"
)

// bcrypt only reads the first 72 bytes of its input and rejects anything longer.
const bcryptMaxPasswordBytes = 72

var forbiddenWords = []string{"password", "admin", "qwerty", "123456"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithPolicy(cost, cfg.PasswordStrength)
}

// NewBcryptHasherWithPolicy builds a hasher with an explicit cost and an optional strength policy.
// A nil policy only requires a non-empty password.
func NewBcryptHasherWithPolicy(cost int, policy *config.PasswordStrengthConfig) service.PasswordHasher {
	return &bcryptHasher{
		cost:   cost,
		policy: policy,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength applies the configured policy to a plaintext password.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if password == "" {
		return domainerrors.ErrPasswordStrength.WithMessage("password must not be empty")
	}
	if len(password) > bcryptMaxPasswordBytes {
		return domainerrors.ErrPasswordStrength.WithMessagef("password must be at most %d bytes long", bcryptMaxPasswordBytes)
	}

	if h.policy == nil {
		return nil
	}

	length := utf8.RuneCountInString(password)
	if h.policy.MinLength > 0 && length < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithMessagef("password must be at least %d characters long", h.policy.MinLength)
	}
	if h.policy.MaxLength > 0 && length > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithMessagef("password must be at most %d characters long", h.policy.MaxLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case h.policy.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithMessage("password must contain at least one lowercase letter")
	case h.policy.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithMessage("password must contain at least one uppercase letter")
	case h.policy.RequireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithMessage("password must contain at least one number")
	case h.policy.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithMessage("password must contain at least one special character")
	}

	lowered := strings.ToLower(password)
	for _, word := range forbiddenWords {
		if strings.Contains(lowered, word) {
			return domainerrors.ErrPasswordStrength.WithMessage("password contains forbidden words")
		}
	}

	return nil
}

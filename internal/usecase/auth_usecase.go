// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bizdesk/internal/domain/entity"
	"bizdesk/internal/domain/service"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued bearer token.
type LoginOutput struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthUsecase defines the authentication operations exposed to the delivery layer.
type AuthUsecase interface {
	// Login checks the credentials and issues a token whose subject is the user's email.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// CurrentUser loads the account a verified principal refers to. A principal
	// whose account no longer exists is rejected with a 403.
	CurrentUser(ctx context.Context, principal *service.Principal) (*entity.User, error)
}

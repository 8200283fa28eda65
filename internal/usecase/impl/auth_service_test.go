package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk/internal/domain/entity"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/domain/service"
	"bizdesk/internal/errors"
	"bizdesk/internal/usecase"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	store        store
	tokenService *mockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	s := newStore()
	hasher := testHasher()
	tokenService := new(mockTokenService)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	require.NoError(t, s.users.Add(context.Background(), &entity.User{
		Name:     "Jane",
		Email:    "jane@x.com",
		Password: hash,
		Role:     entity.RoleMember,
	}))

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     s.users,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return authServiceFixtures{service: svc, store: s, tokenService: tokenService}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	expiresAt := time.Now().Add(24 * time.Hour)
	fx.tokenService.On("IssueToken", "1").Return("signed.token.value", expiresAt, nil)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "Jane@x.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, "Bearer", output.TokenType)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	fx.tokenService.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.LoginInput
	}{
		{name: "wrong password", input: usecase.LoginInput{Email: "jane@x.com", Password: "nope"}},
		{name: "unknown email", input: usecase.LoginInput{Email: "ghost@x.com", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			output, err := fx.service.Login(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
			fx.tokenService.AssertNotCalled(t, "IssueToken", "1")
		})
	}
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenService.On("IssueToken", "1").Return("", time.Time{}, errors.New("signing failed"))

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "jane@x.com", Password: "pw"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing failed")
}

func TestAuthService_CurrentUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user, err := fx.service.CurrentUser(ctx, &service.Principal{Subject: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)

	_, err = fx.service.CurrentUser(ctx, &service.Principal{Subject: "99"})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = fx.service.CurrentUser(ctx, &service.Principal{Subject: "jane@x.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = fx.service.CurrentUser(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredential))
}

func TestAuthService_CurrentUser_SurvivesEmailChange(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	stored, err := fx.store.users.GetOne(ctx, 1)
	require.NoError(t, err)
	stored.Email = "jane.doe@x.com"
	require.NoError(t, fx.store.users.Update(ctx, stored))

	user, err := fx.service.CurrentUser(ctx, &service.Principal{Subject: "1"})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@x.com", user.Email)
}

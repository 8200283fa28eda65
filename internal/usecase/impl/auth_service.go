package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.uber.org/fx"

	deliverycontext "bizdesk/internal/delivery/context"
	"bizdesk/internal/domain/entity"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/domain/service"
	"bizdesk/internal/errors"
	"bizdesk/internal/usecase"
	"bizdesk/internal/util"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.Repository[*entity.User]
	hasher       service.PasswordHasher
	tokenService service.TokenService
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.Repository[*entity.User]
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials. An unknown email and a wrong password fail
// the same way so that callers cannot probe for accounts.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.GetOneBy(ctx, repository.Criteria{"email": email})
	if errors.Is(err, repository.ErrNotFound) {
		srv.log(ctx).Warn("Login failed: unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed: wrong password", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.IssueToken(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User logged in",
		slog.Int64("userID", user.ID),
		slog.String("expiresIn", util.FormatDuration(expiresAt.Sub(srv.now()))),
	)

	return &usecase.LoginOutput{
		Token:     token,
		TokenType: tokenTypeBearer,
		ExpiresAt: expiresAt,
	}, nil
}

func (srv *authService) CurrentUser(ctx context.Context, principal *service.Principal) (*entity.User, error) {
	if principal == nil {
		return nil, domainerrors.ErrMissingCredential
	}

	id, ok := principal.UserID()
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.GetOne(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrForbidden.WithMessage("The account for this token no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

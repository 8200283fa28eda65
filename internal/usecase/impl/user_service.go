// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"bizdesk/config"
	deliverycontext "bizdesk/internal/delivery/context"
	"bizdesk/internal/domain/entity"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/domain/service"
	"bizdesk/internal/errors"
	"bizdesk/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.Repository[*entity.User]
	refs             usecase.ReferenceChecker
	hasher           service.PasswordHasher
	enforceOwnership bool
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.Repository[*entity.User]
	References usecase.ReferenceChecker
	Hasher     service.PasswordHasher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	enforceOwnership := false
	if params.Config != nil && params.Config.Auth != nil {
		enforceOwnership = params.Config.Auth.EnforceOwnership
	}

	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refs:             params.References,
		hasher:           params.Hasher,
		enforceOwnership: enforceOwnership,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. Registration is open; the email must be unused.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entity.RoleMember
	}

	user := &entity.User{
		CompanyID: input.CompanyID,
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      role,
	}

	err = srv.txManager.Execute(ctx, func(ctx context.Context) error {
		if err := srv.refs.Check(ctx, usecase.OptionalRef("company_id", usecase.TargetCompany, input.CompanyID)); err != nil {
			return err
		}
		if err := srv.ensureEmailAvailable(ctx, email, 0); err != nil {
			return err
		}

		return srv.userRepo.Add(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("email", user.Email))

	return user, nil
}

func (srv *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.GetOne(ctx, id)
	if err != nil {
		return nil, notFound(err, "user %d not found", id)
	}

	return user, nil
}

func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, "user %s not found", email)
	}

	return user, nil
}

func (srv *userService) List(ctx context.Context, criteria repository.Criteria, order repository.Order) ([]*entity.User, error) {
	users, err := srv.userRepo.GetByOrder(ctx, criteria, order)
	if err != nil {
		return nil, invalidCriteria(err)
	}

	return users, nil
}

func (srv *userService) ListByCompany(ctx context.Context, companyID int64, order repository.Order) ([]*entity.User, error) {
	if err := srv.refs.Exists(ctx, usecase.TargetCompany, companyID); err != nil {
		return nil, err
	}

	return srv.List(ctx, repository.Criteria{"company_id": companyID}, order)
}

// UpdateByEmail overlays the fields present in input onto the stored account.
func (srv *userService) UpdateByEmail(
	ctx context.Context,
	actor *service.Principal,
	email string,
	input usecase.UpdateUserInput,
) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(ctx context.Context) error {
		user, err := srv.findByEmail(ctx, email)
		if err != nil {
			return notFound(err, "user %s not found", email)
		}
		if err := srv.authorize(actor, user); err != nil {
			return err
		}

		if err := srv.apply(ctx, user, input); err != nil {
			return err
		}

		if err := srv.userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Int64("userID", updated.ID))

	return updated, nil
}

func (srv *userService) apply(ctx context.Context, user *entity.User, input usecase.UpdateUserInput) error {
	if input.CompanyID != nil {
		if err := srv.refs.Check(ctx, usecase.OptionalRef("company_id", usecase.TargetCompany, input.CompanyID)); err != nil {
			return err
		}
		user.CompanyID = input.CompanyID
	}

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != user.Email {
			if err := srv.ensureEmailAvailable(ctx, email, user.ID); err != nil {
				return err
			}
			user.Email = email
		}
	}

	if input.Password != nil {
		hash, err := srv.hashPassword(*input.Password)
		if err != nil {
			return err
		}
		user.Password = hash
	}

	if input.Name != nil {
		name, err := requireName(*input.Name)
		if err != nil {
			return err
		}
		user.Name = name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	return nil
}

func (srv *userService) DeleteByEmail(ctx context.Context, actor *service.Principal, email string) error {
	err := srv.txManager.Execute(ctx, func(ctx context.Context) error {
		user, err := srv.findByEmail(ctx, email)
		if err != nil {
			return notFound(err, "user %s not found", email)
		}
		if err := srv.authorize(actor, user); err != nil {
			return err
		}
		if err := srv.refs.InUse(ctx, usecase.TargetUser, user.ID); err != nil {
			return err
		}

		return srv.userRepo.Delete(ctx, user)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("email", email))

	return nil
}

// authorize enforces that actors only mutate their own account when ownership is on.
func (srv *userService) authorize(actor *service.Principal, user *entity.User) error {
	if !srv.enforceOwnership {
		return nil
	}
	if actor != nil {
		if id, ok := actor.UserID(); ok && id == user.ID {
			return nil
		}
	}

	return domainerrors.ErrForbidden.WithMessage("Users may only modify their own account")
}

func (srv *userService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	return srv.userRepo.GetOneBy(ctx, repository.Criteria{"email": normalizeEmail(email)})
}

func (srv *userService) ensureEmailAvailable(ctx context.Context, email string, ownID int64) error {
	existing, err := srv.findByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == ownID {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithMessagef("email %s is already registered", email)
}

func (srv *userService) hashPassword(password string) (string, error) {
	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}

// requireName trims name and rejects a blank result.
func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerrors.ErrValidationFailed.WithMessage("name must not be blank")
	}

	return name, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// notFound maps the repository sentinel onto the 404 domain error.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrNotFound.WithMessagef(format, args...)
	}

	return err
}

// invalidCriteria maps unknown filter or sort fields onto a 400.
func invalidCriteria(err error) error {
	if errors.Is(err, repository.ErrInvalidCriteria) {
		return domainerrors.ErrValidationFailed.WithMessage(err.Error())
	}

	return err
}

package usecase

import (
	"context"

	"bizdesk/internal/domain/entity"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/domain/service"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	CompanyID *int64      `json:"company_id" validate:"omitempty,gt=0"`
	Name      string      `json:"name" validate:"required,notblank,max=100"`
	Email     string      `json:"email" validate:"required,email,max=255"`
	Password  string      `json:"password" validate:"required"`
	Role      entity.Role `json:"role" validate:"omitempty,oneof=admin member"`
}

// UpdateUserInput holds the fields present in an update body; nil means unchanged.
type UpdateUserInput struct {
	CompanyID *int64       `json:"company_id" validate:"omitempty,gt=0"`
	Name      *string      `json:"name" validate:"omitempty,notblank,max=100"`
	Email     *string      `json:"email" validate:"omitempty,email,max=255"`
	Password  *string      `json:"password" validate:"omitempty,min=1"`
	Role      *entity.Role `json:"role" validate:"omitempty,oneof=admin member"`
}

// UserUsecase defines the user account operations. Mutations by email take the
// acting principal so that ownership can be enforced when configured.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, criteria repository.Criteria, order repository.Order) ([]*entity.User, error)
	ListByCompany(ctx context.Context, companyID int64, order repository.Order) ([]*entity.User, error)
	UpdateByEmail(ctx context.Context, actor *service.Principal, email string, input UpdateUserInput) (*entity.User, error)
	DeleteByEmail(ctx context.Context, actor *service.Principal, email string) error
}

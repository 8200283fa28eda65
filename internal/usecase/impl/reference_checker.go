package impl

import (
	"context"

	"go.uber.org/fx"

	"bizdesk/internal/domain/entity"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/errors"
	"bizdesk/internal/usecase"
)

type lookupFunc func(ctx context.Context, id int64) error

// dependent is one foreign key column pointing at a target.
type dependent struct {
	column string
	find   lookupFunc
}

// referenceChecker implements the ReferenceChecker interface.
type referenceChecker struct {
	lookups    map[usecase.Target]lookupFunc
	dependents map[usecase.Target][]dependent
}

// ReferenceCheckerParams holds the repositories foreign keys can point at or live in.
type ReferenceCheckerParams struct {
	fx.In

	Companies  repository.Repository[*entity.Company]
	Customers  repository.Repository[*entity.Customer]
	Suppliers  repository.Repository[*entity.Supplier]
	Projects   repository.Repository[*entity.Project]
	Users      repository.Repository[*entity.User]
	Products   repository.Repository[*entity.Product]
	Tasks      repository.Repository[*entity.Task]
	Invoices   repository.Repository[*entity.Invoice]
	Estimates  repository.Repository[*entity.Estimate]
	OrderForms repository.Repository[*entity.OrderForm]
	Messages   repository.Repository[*entity.Message]
}

// NewReferenceChecker is the constructor for referenceChecker.
func NewReferenceChecker(params ReferenceCheckerParams) usecase.ReferenceChecker {
	return &referenceChecker{
		lookups: map[usecase.Target]lookupFunc{
			usecase.TargetCompany:  lookup(params.Companies),
			usecase.TargetCustomer: lookup(params.Customers),
			usecase.TargetSupplier: lookup(params.Suppliers),
			usecase.TargetProject:  lookup(params.Projects),
			usecase.TargetUser:     lookup(params.Users),
		},
		dependents: map[usecase.Target][]dependent{
			usecase.TargetCompany: {
				dependentOf(params.Users, "users", "company_id"),
				dependentOf(params.Customers, "customers", "company_id"),
				dependentOf(params.Suppliers, "suppliers", "company_id"),
				dependentOf(params.Products, "products", "company_id"),
				dependentOf(params.Projects, "projects", "company_id"),
				dependentOf(params.Invoices, "invoices", "company_id"),
				dependentOf(params.Estimates, "estimates", "company_id"),
				dependentOf(params.OrderForms, "order_forms", "company_id"),
			},
			usecase.TargetCustomer: {
				dependentOf(params.Projects, "projects", "customer_id"),
				dependentOf(params.Invoices, "invoices", "customer_id"),
				dependentOf(params.Estimates, "estimates", "customer_id"),
			},
			usecase.TargetSupplier: {
				dependentOf(params.Products, "products", "supplier_id"),
				dependentOf(params.OrderForms, "order_forms", "supplier_id"),
			},
			usecase.TargetProject: {
				dependentOf(params.Tasks, "tasks", "project_id"),
				dependentOf(params.Invoices, "invoices", "project_id"),
				dependentOf(params.Estimates, "estimates", "project_id"),
			},
			usecase.TargetUser: {
				dependentOf(params.Tasks, "tasks", "assignee_id"),
				dependentOf(params.Messages, "messages", "sender_id"),
				dependentOf(params.Messages, "messages", "recipient_id"),
			},
		},
	}
}

func dependentOf[E entity.Entity](repo repository.Repository[E], table, field string) dependent {
	return dependent{
		column: table + "." + field,
		find: func(ctx context.Context, id int64) error {
			_, err := repo.GetOneBy(ctx, repository.Criteria{field: id})

			return err
		},
	}
}

func lookup[E entity.Entity](repo repository.Repository[E]) lookupFunc {
	return func(ctx context.Context, id int64) error {
		_, err := repo.GetOne(ctx, id)

		return err
	}
}

func (r *referenceChecker) Check(ctx context.Context, refs ...usecase.Reference) error {
	for _, ref := range refs {
		if ref.ID == 0 {
			continue
		}

		err := r.find(ctx, ref.Target, ref.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrValidationFailed.WithMessagef("%s: %s %d does not exist", ref.Field, ref.Target, ref.ID)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *referenceChecker) Exists(ctx context.Context, target usecase.Target, id int64) error {
	err := r.find(ctx, target, id)
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrNotFound.WithMessagef("%s %d not found", target, id)
	}

	return err
}

func (r *referenceChecker) InUse(ctx context.Context, target usecase.Target, id int64) error {
	for _, dep := range r.dependents[target] {
		err := dep.find(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return errors.WithStack(err)
		}

		return domainerrors.ErrValidationFailed.WithMessagef("%s %d is still referenced by %s", target, id, dep.column)
	}

	return nil
}

func (r *referenceChecker) find(ctx context.Context, target usecase.Target, id int64) error {
	fn, ok := r.lookups[target]
	if !ok {
		return errors.Errorf("no repository for reference target %q", target)
	}

	return errors.WithStack(fn(ctx, id))
}

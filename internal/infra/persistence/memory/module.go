package memory

import (
	"go.uber.org/fx"

	"bizdesk/internal/domain/entity"
)

// Module provides the in-memory transaction manager and one repository per entity.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			NewTransactionManager,
			NewRepository[*entity.Company],
			NewRepository[*entity.User],
			NewRepository[*entity.Customer],
			NewRepository[*entity.Supplier],
			NewRepository[*entity.Product],
			NewRepository[*entity.Project],
			NewRepository[*entity.Task],
			NewRepository[*entity.Invoice],
			NewRepository[*entity.Estimate],
			NewRepository[*entity.OrderForm],
			NewRepository[*entity.Message],
		),
	)
}

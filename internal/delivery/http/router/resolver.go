package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"bizdesk/internal/delivery/http/middleware"
	"bizdesk/internal/delivery/http/router/handler"
	"bizdesk/internal/delivery/http/routing"
	"bizdesk/internal/domain/entity"
	"bizdesk/internal/errors"
)

type RouterParams struct {
	fx.In

	Table          *routing.Table
	AuthMiddleware *middleware.AuthMiddleware

	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	CompanyHandler   *handler.ResourceHandler[*entity.Company]
	CustomerHandler  *handler.ResourceHandler[*entity.Customer]
	SupplierHandler  *handler.ResourceHandler[*entity.Supplier]
	ProductHandler   *handler.ResourceHandler[*entity.Product]
	ProjectHandler   *handler.ResourceHandler[*entity.Project]
	TaskHandler      *handler.ResourceHandler[*entity.Task]
	InvoiceHandler   *handler.ResourceHandler[*entity.Invoice]
	EstimateHandler  *handler.ResourceHandler[*entity.Estimate]
	OrderFormHandler *handler.ResourceHandler[*entity.OrderForm]
	MessageHandler   *handler.ResourceHandler[*entity.Message]
}

type guard func(echo.HandlerFunc) echo.HandlerFunc

func open(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

// Resolver maps handler identifiers to bound controller operations.
type Resolver struct {
	handlers map[routing.HandlerID]echo.HandlerFunc
}

// NewResolver binds every controller operation and checks that each route of
// the table resolves to one.
func NewResolver(params RouterParams) (*Resolver, error) {
	r := &Resolver{handlers: make(map[routing.HandlerID]echo.HandlerFunc)}
	authenticated := guard(params.AuthMiddleware.Authenticate)

	r.bind(routing.ControllerHealth, routing.OperationCheck, open(params.HealthHandler.Check))
	r.bind(routing.ControllerAuth, routing.OperationLogin, open(params.AuthHandler.Login))
	r.bind(routing.ControllerAuth, routing.OperationMe, authenticated(params.AuthHandler.Me))

	users := params.UserHandler
	r.bind(routing.ControllerUser, routing.OperationCreate, open(users.Register))
	r.bind(routing.ControllerUser, routing.OperationList, open(users.List))
	r.bind(routing.ControllerUser, routing.OperationListByParent, open(users.ListByCompany))
	r.bind(routing.ControllerUser, routing.OperationGet, open(users.Get))
	r.bind(routing.ControllerUser, routing.OperationGetByEmail, open(users.GetByEmail))
	r.bind(routing.ControllerUser, routing.OperationUpdateByEmail, authenticated(users.UpdateByEmail))
	r.bind(routing.ControllerUser, routing.OperationDeleteByEmail, authenticated(users.DeleteByEmail))

	bindResource(r, routing.ControllerCompany, params.CompanyHandler, authenticated)
	bindResource(r, routing.ControllerCustomer, params.CustomerHandler, open)
	bindResource(r, routing.ControllerSupplier, params.SupplierHandler, open)
	bindResource(r, routing.ControllerProduct, params.ProductHandler, open)
	bindResource(r, routing.ControllerProject, params.ProjectHandler, open)
	bindResource(r, routing.ControllerTask, params.TaskHandler, open)
	bindResource(r, routing.ControllerInvoice, params.InvoiceHandler, open)
	bindResource(r, routing.ControllerEstimate, params.EstimateHandler, open)
	bindResource(r, routing.ControllerOrderForm, params.OrderFormHandler, open)
	bindResource(r, routing.ControllerMessage, params.MessageHandler, open)

	for _, route := range params.Table.Routes() {
		if _, ok := r.handlers[route.Handler]; !ok {
			return nil, errors.Errorf("route %s %s: no handler bound for %s", route.Method, route.Pattern, route.Handler)
		}
	}

	return r, nil
}

// bindResource binds the generic operations of a resource handler. Mutations
// run behind mutate.
func bindResource[E entity.Entity](r *Resolver, controller routing.Controller, h *handler.ResourceHandler[E], mutate guard) {
	r.bind(controller, routing.OperationList, h.List)
	r.bind(controller, routing.OperationListByParent, h.ListByParent)
	r.bind(controller, routing.OperationGet, h.Get)
	r.bind(controller, routing.OperationCreate, mutate(h.Create))
	r.bind(controller, routing.OperationUpdate, mutate(h.Update))
	r.bind(controller, routing.OperationDelete, mutate(h.Delete))
}

func (r *Resolver) bind(controller routing.Controller, operation routing.Operation, fn echo.HandlerFunc) {
	r.handlers[routing.Handle(controller, operation)] = fn
}

// Resolve returns the operation bound to id.
func (r *Resolver) Resolve(id routing.HandlerID) (echo.HandlerFunc, bool) {
	fn, ok := r.handlers[id]

	return fn, ok
}

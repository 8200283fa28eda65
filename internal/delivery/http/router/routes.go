package router

import (
	"net/http"

	"bizdesk/internal/delivery/http/routing"
)

type crudResource struct {
	path       string
	controller routing.Controller
}

// crudResources are the collections served by the generic resource handler.
var crudResources = []crudResource{
	{path: "/companies", controller: routing.ControllerCompany},
	{path: "/customers", controller: routing.ControllerCustomer},
	{path: "/suppliers", controller: routing.ControllerSupplier},
	{path: "/products", controller: routing.ControllerProduct},
	{path: "/projects", controller: routing.ControllerProject},
	{path: "/tasks", controller: routing.ControllerTask},
	{path: "/invoices", controller: routing.ControllerInvoice},
	{path: "/estimates", controller: routing.ControllerEstimate},
	{path: "/order-forms", controller: routing.ControllerOrderForm},
	{path: "/messages", controller: routing.ControllerMessage},
}

// nestedListings are GET /{parent}/{id}/{children} routes.
var nestedListings = []struct {
	pattern    string
	controller routing.Controller
}{
	{pattern: "/companies/{id:int}/users", controller: routing.ControllerUser},
	{pattern: "/companies/{id:int}/customers", controller: routing.ControllerCustomer},
	{pattern: "/companies/{id:int}/suppliers", controller: routing.ControllerSupplier},
	{pattern: "/companies/{id:int}/products", controller: routing.ControllerProduct},
	{pattern: "/companies/{id:int}/projects", controller: routing.ControllerProject},
	{pattern: "/projects/{id:int}/tasks", controller: routing.ControllerTask},
	{pattern: "/customers/{id:int}/invoices", controller: routing.ControllerInvoice},
	{pattern: "/customers/{id:int}/estimates", controller: routing.ControllerEstimate},
	{pattern: "/suppliers/{id:int}/order-forms", controller: routing.ControllerOrderForm},
	{pattern: "/users/{id:int}/messages", controller: routing.ControllerMessage},
}

// Routes returns every route the API serves. /metrics is mounted on the
// server directly and is not part of the table.
func Routes() []routing.Route {
	routes := []routing.Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: routing.Handle(routing.ControllerHealth, routing.OperationCheck)},
		{Method: http.MethodPost, Pattern: "/login", Handler: routing.Handle(routing.ControllerAuth, routing.OperationLogin)},
		{Method: http.MethodGet, Pattern: "/me", Handler: routing.Handle(routing.ControllerAuth, routing.OperationMe)},

		{Method: http.MethodPost, Pattern: "/users", Handler: routing.Handle(routing.ControllerUser, routing.OperationCreate)},
		{Method: http.MethodGet, Pattern: "/users", Handler: routing.Handle(routing.ControllerUser, routing.OperationList)},
		{Method: http.MethodGet, Pattern: "/users/{id:int}", Handler: routing.Handle(routing.ControllerUser, routing.OperationGet)},
		{Method: http.MethodGet, Pattern: "/users/by-email/{email}", Handler: routing.Handle(routing.ControllerUser, routing.OperationGetByEmail)},
		{Method: http.MethodPut, Pattern: "/users/by-email/{email}", Handler: routing.Handle(routing.ControllerUser, routing.OperationUpdateByEmail)},
		{Method: http.MethodDelete, Pattern: "/users/by-email/{email}", Handler: routing.Handle(routing.ControllerUser, routing.OperationDeleteByEmail)},
	}

	for _, res := range crudResources {
		item := res.path + "/{id:int}"
		routes = append(routes,
			routing.Route{Method: http.MethodPost, Pattern: res.path, Handler: routing.Handle(res.controller, routing.OperationCreate)},
			routing.Route{Method: http.MethodGet, Pattern: res.path, Handler: routing.Handle(res.controller, routing.OperationList)},
			routing.Route{Method: http.MethodGet, Pattern: item, Handler: routing.Handle(res.controller, routing.OperationGet)},
			routing.Route{Method: http.MethodPut, Pattern: item, Handler: routing.Handle(res.controller, routing.OperationUpdate)},
			routing.Route{Method: http.MethodDelete, Pattern: item, Handler: routing.Handle(res.controller, routing.OperationDelete)},
		)
	}

	for _, nested := range nestedListings {
		routes = append(routes, routing.Route{
			Method:  http.MethodGet,
			Pattern: nested.pattern,
			Handler: routing.Handle(nested.controller, routing.OperationListByParent),
		})
	}

	return routes
}

// NewTable builds the route table served by the dispatcher.
func NewTable() (*routing.Table, error) {
	return routing.NewTable(Routes()...)
}

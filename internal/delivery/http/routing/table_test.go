package routing

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoutes() []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: Handle(ControllerHealth, OperationCheck)},
		{Method: http.MethodPost, Pattern: "/users", Handler: Handle(ControllerUser, OperationCreate)},
		{Method: http.MethodGet, Pattern: "/users", Handler: Handle(ControllerUser, OperationList)},
		{Method: http.MethodGet, Pattern: "/users/{id:int}", Handler: Handle(ControllerUser, OperationGet)},
		{Method: http.MethodGet, Pattern: "/users/by-email/{email}", Handler: Handle(ControllerUser, OperationGetByEmail)},
		{Method: http.MethodPut, Pattern: "/users/by-email/{email}", Handler: Handle(ControllerUser, OperationUpdateByEmail)},
		{Method: http.MethodDelete, Pattern: "/users/by-email/{email}", Handler: Handle(ControllerUser, OperationDeleteByEmail)},
		{Method: http.MethodGet, Pattern: "/users/{id:int}/messages", Handler: Handle(ControllerMessage, OperationListByParent)},
		{Method: http.MethodGet, Pattern: "/companies/{id:int}", Handler: Handle(ControllerCompany, OperationGet)},
		{Method: http.MethodPut, Pattern: "/companies/{id:int}", Handler: Handle(ControllerCompany, OperationUpdate)},
		{Method: http.MethodDelete, Pattern: "/companies/{id:int}", Handler: Handle(ControllerCompany, OperationDelete)},
		{Method: http.MethodGet, Pattern: "/companies/{id:int}/users", Handler: Handle(ControllerUser, OperationListByParent)},
	}
}

func newTestTable(t *testing.T) *Table {
	t.Helper()

	table, err := NewTable(testRoutes()...)
	require.NoError(t, err)

	return table
}

func TestMatch_Matched(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name    string
		method  string
		path    string
		handler HandlerID
		pattern string
		params  Params
	}{
		{
			name:    "static route",
			method:  http.MethodGet,
			path:    "/health",
			handler: Handle(ControllerHealth, OperationCheck),
			pattern: "/health",
			params:  Params{},
		},
		{
			name:    "int placeholder",
			method:  http.MethodGet,
			path:    "/users/42",
			handler: Handle(ControllerUser, OperationGet),
			pattern: "/users/{id:int}",
			params:  Params{{Name: "id", Value: "42"}},
		},
		{
			name:    "percent-decoded email",
			method:  http.MethodPut,
			path:    "/users/by-email/jane%40x.com",
			handler: Handle(ControllerUser, OperationUpdateByEmail),
			pattern: "/users/by-email/{email}",
			params:  Params{{Name: "email", Value: "jane@x.com"}},
		},
		{
			name:    "nested listing",
			method:  http.MethodGet,
			path:    "/companies/7/users",
			handler: Handle(ControllerUser, OperationListByParent),
			pattern: "/companies/{id:int}/users",
			params:  Params{{Name: "id", Value: "7"}},
		},
		{
			name:    "query string stripped",
			method:  http.MethodGet,
			path:    "/users?name=Jane&sort=-id",
			handler: Handle(ControllerUser, OperationList),
			pattern: "/users",
			params:  Params{},
		},
		{
			name:    "int placeholder beyond int64 still matches",
			method:  http.MethodGet,
			path:    "/users/99999999999999999999",
			handler: Handle(ControllerUser, OperationGet),
			pattern: "/users/{id:int}",
			params:  Params{{Name: "id", Value: "99999999999999999999"}},
		},
		{
			name:    "trailing slash ignored",
			method:  http.MethodGet,
			path:    "/users/42/",
			handler: Handle(ControllerUser, OperationGet),
			pattern: "/users/{id:int}",
			params:  Params{{Name: "id", Value: "42"}},
		},
		{
			name:    "method is case-insensitive",
			method:  "delete",
			path:    "/companies/3",
			handler: Handle(ControllerCompany, OperationDelete),
			pattern: "/companies/{id:int}",
			params:  Params{{Name: "id", Value: "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := table.Match(tt.method, tt.path)

			require.Equal(t, Matched, result.Kind)
			assert.Equal(t, tt.handler, result.Handler)
			assert.Equal(t, tt.pattern, result.Pattern)
			assert.Equal(t, tt.params, result.Params)
			assert.Empty(t, result.Allowed)
		})
	}
}

func TestMatch_MethodNotAllowed(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name    string
		method  string
		path    string
		allowed []string
	}{
		{
			name:    "delete on read-only user id",
			method:  http.MethodDelete,
			path:    "/users/42",
			allowed: []string{http.MethodGet},
		},
		{
			name:    "delete on overflowing user id",
			method:  http.MethodDelete,
			path:    "/users/99999999999999999999",
			allowed: []string{http.MethodGet},
		},
		{
			name:    "post on email route lists every method",
			method:  http.MethodPost,
			path:    "/users/by-email/jane@x.com",
			allowed: []string{http.MethodDelete, http.MethodGet, http.MethodPut},
		},
		{
			name:    "collection",
			method:  http.MethodDelete,
			path:    "/users",
			allowed: []string{http.MethodGet, http.MethodPost},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := table.Match(tt.method, tt.path)

			require.Equal(t, MethodNotAllowed, result.Kind)
			assert.Equal(t, tt.allowed, result.Allowed)
			assert.Nil(t, result.Params)
		})
	}
}

func TestMatch_NotFound(t *testing.T) {
	table := newTestTable(t)

	paths := []string{
		"/nonexistent",
		"/users/abc",
		"/users/42/invoices",
		"/users//messages",
		"/users/by-email",
		"/users/%zz",
		"users",
		"/users/99999999999999999999",
		"/",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			result := table.Match(http.MethodGet, path)

			assert.Equal(t, NotFound, result.Kind)
			assert.Empty(t, result.Allowed)
		})
	}
}

func TestMatch_Precedence(t *testing.T) {
	table, err := NewTable(
		Route{Method: http.MethodGet, Pattern: "/items/{name}", Handler: Handle(ControllerProduct, OperationGetByEmail)},
		Route{Method: http.MethodGet, Pattern: "/items/{id:int}", Handler: Handle(ControllerProduct, OperationGet)},
		Route{Method: http.MethodGet, Pattern: "/items/latest", Handler: Handle(ControllerProduct, OperationList)},
		Route{Method: http.MethodPost, Pattern: "/items/{id:int}/tasks", Handler: Handle(ControllerTask, OperationCreate)},
		Route{Method: http.MethodGet, Pattern: "/items/{name}/tasks", Handler: Handle(ControllerTask, OperationListByParent)},
	)
	require.NoError(t, err)

	t.Run("static beats placeholders", func(t *testing.T) {
		result := table.Match(http.MethodGet, "/items/latest")
		require.Equal(t, Matched, result.Kind)
		assert.Equal(t, Handle(ControllerProduct, OperationList), result.Handler)
	})

	t.Run("int beats string", func(t *testing.T) {
		result := table.Match(http.MethodGet, "/items/12")
		require.Equal(t, Matched, result.Kind)
		assert.Equal(t, Handle(ControllerProduct, OperationGet), result.Handler)
	})

	t.Run("string catches the rest", func(t *testing.T) {
		result := table.Match(http.MethodGet, "/items/widget")
		require.Equal(t, Matched, result.Kind)
		assert.Equal(t, Handle(ControllerProduct, OperationGetByEmail), result.Handler)
		assert.Equal(t, Params{{Name: "name", Value: "widget"}}, result.Params)
	})

	t.Run("backtracks to string when int has no route for method", func(t *testing.T) {
		result := table.Match(http.MethodGet, "/items/12/tasks")
		require.Equal(t, Matched, result.Kind)
		assert.Equal(t, Handle(ControllerTask, OperationListByParent), result.Handler)
		assert.Equal(t, Params{{Name: "name", Value: "12"}}, result.Params)
	})

	t.Run("allowed methods are the union of matching patterns", func(t *testing.T) {
		result := table.Match(http.MethodDelete, "/items/12/tasks")
		require.Equal(t, MethodNotAllowed, result.Kind)
		assert.Equal(t, []string{http.MethodGet, http.MethodPost}, result.Allowed)
	})
}

func TestNewTable_Rejects(t *testing.T) {
	user := Handle(ControllerUser, OperationGet)

	tests := []struct {
		name   string
		routes []Route
	}{
		{
			name: "duplicate route",
			routes: []Route{
				{Method: http.MethodGet, Pattern: "/users/{id:int}", Handler: user},
				{Method: http.MethodGet, Pattern: "/users/{id:int}", Handler: user},
			},
		},
		{
			name: "same shape with different names",
			routes: []Route{
				{Method: http.MethodGet, Pattern: "/users/{id:int}", Handler: user},
				{Method: http.MethodGet, Pattern: "/users/{userID:int}", Handler: user},
			},
		},
		{name: "relative pattern", routes: []Route{{Method: http.MethodGet, Pattern: "users", Handler: user}}},
		{name: "empty segment", routes: []Route{{Method: http.MethodGet, Pattern: "/users//x", Handler: user}}},
		{name: "unknown type", routes: []Route{{Method: http.MethodGet, Pattern: "/users/{id:uuid}", Handler: user}}},
		{name: "empty name", routes: []Route{{Method: http.MethodGet, Pattern: "/users/{:int}", Handler: user}}},
		{name: "duplicate name", routes: []Route{{Method: http.MethodGet, Pattern: "/a/{id}/b/{id}", Handler: user}}},
		{name: "unterminated placeholder", routes: []Route{{Method: http.MethodGet, Pattern: "/users/{id", Handler: user}}},
		{name: "brace in static segment", routes: []Route{{Method: http.MethodGet, Pattern: "/us}ers", Handler: user}}},
		{name: "empty method", routes: []Route{{Method: " ", Pattern: "/users", Handler: user}}},
		{name: "invalid handler", routes: []Route{{Method: http.MethodGet, Pattern: "/users", Handler: HandlerID{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.routes...)

			require.Error(t, err)
			assert.Nil(t, table)
		})
	}
}

func TestTable_Routes(t *testing.T) {
	table, err := NewTable(
		Route{Method: "post", Pattern: "/users", Handler: Handle(ControllerUser, OperationCreate)},
		Route{Method: http.MethodGet, Pattern: "/users", Handler: Handle(ControllerUser, OperationList)},
	)
	require.NoError(t, err)

	routes := table.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, http.MethodPost, routes[0].Method)

	routes[0].Pattern = "/mutated"
	assert.Equal(t, "/users", table.Routes()[0].Pattern)
}

func TestHandlerID_String(t *testing.T) {
	assert.Equal(t, "order_form.list_by_parent", Handle(ControllerOrderForm, OperationListByParent).String())
	assert.Equal(t, "unknown.unknown", HandlerID{}.String())
	assert.Equal(t, "method_not_allowed", MethodNotAllowed.String())
}

// Package router wires the route table, the handler resolver and echo together.
package router

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "bizdesk/internal/delivery/context"
	"bizdesk/internal/delivery/http/routing"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/errors"
)

// Router dispatches every request through the route table.
type Router struct {
	table    *routing.Table
	resolver *Resolver
}

// NewRouter is the constructor for the Router.
// Fx will inject the table and the resolver here.
func NewRouter(table *routing.Table, resolver *Resolver) *Router {
	return &Router{
		table:    table,
		resolver: resolver,
	}
}

// RegisterRoutes mounts the dispatcher as echo's catch-all route.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.Any("/*", r.Dispatch)
}

// Dispatch matches the request and runs the resolved handler with the path
// parameters in declaration order. Unmatched paths and wrong methods become
// 404 and 405 errors for the HTTP error handler.
func (r *Router) Dispatch(c echo.Context) error {
	req := c.Request()
	result := r.table.Match(req.Method, req.URL.EscapedPath())

	switch result.Kind {
	case routing.Matched:
		fn, ok := r.resolver.Resolve(result.Handler)
		if !ok {
			return errors.Errorf("no handler bound for %s", result.Handler)
		}

		c.SetPath(result.Pattern)
		c.SetParamNames(result.Params.Names()...)
		c.SetParamValues(result.Params.Values()...)
		deliverycontext.SetRoutePattern(c, result.Pattern)

		return fn(c)
	case routing.MethodNotAllowed:
		allowed := strings.Join(result.Allowed, ", ")
		c.Response().Header().Set(echo.HeaderAllow, allowed)

		return domainerrors.ErrMethodNotAllowed.WithMessagef(
			"Method %s is not allowed for %s; allowed: %s", req.Method, req.URL.Path, allowed)
	default:
		return domainerrors.ErrRouteNotFound.WithMessagef("No route matches %s %s", req.Method, req.URL.Path)
	}
}

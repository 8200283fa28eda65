package middleware

import (
	"github.com/labstack/echo/v4"

	deliverycontext "bizdesk/internal/delivery/context"
	"bizdesk/internal/domain/service"
)

// AuthMiddleware guards handlers behind a valid bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the Authorization header before the handler runs and
// stores the principal for it. Failures short-circuit with a 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.tokenSvc.AuthenticateRequest(c.Request().Header)
		if err != nil {
			return err
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

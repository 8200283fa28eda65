package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "bizdesk/internal/delivery/context"
	"bizdesk/internal/delivery/http/response"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/errors"
	"bizdesk/internal/usecase"
)

// AuthHandler serves login and the current-account endpoint.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	writer *response.Writer
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(uc usecase.AuthUsecase, writer *response.Writer) *AuthHandler {
	return &AuthHandler{uc: uc, writer: writer}
}

// Login handles POST /login and returns the bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindBody(c, &input, true); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writer.Data(c, http.StatusOK, output)
}

// Me handles GET /me: the account of the authenticated principal.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredential
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writer.Data(c, http.StatusOK, user)
}

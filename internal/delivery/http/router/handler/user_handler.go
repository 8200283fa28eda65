package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "bizdesk/internal/delivery/context"
	"bizdesk/internal/delivery/http/response"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/errors"
	"bizdesk/internal/usecase"
	"bizdesk/internal/util"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Writer *response.Writer
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	writer *response.Writer
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:     params.UserUC,
		writer: params.Writer,
		logger: params.Logger,
	}
}

// Register handles POST /users. Registration does not require a token.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := bindBody(c, &input, true); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writer.Created(c, fmt.Sprintf("/users/%d", user.ID), fmt.Sprintf("User %d created", user.ID))
}

// List handles GET /users with optional criteria and sort query parameters.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context(), queryCriteria(c), repository.ParseOrder(c.QueryParam(sortParam)))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writer.Data(c, http.StatusOK, users)
}

// ListByCompany handles GET /companies/{id}/users.
func (h *UserHandler) ListByCompany(c echo.Context) error {
	companyID, err := util.ParseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound.WithMessagef("company %s not found", c.Param("id"))
	}

	users, err := h.uc.ListByCompany(c.Request().Context(), companyID, repository.ParseOrder(c.QueryParam(sortParam)))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writer.Data(c, http.StatusOK, users)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound.WithMessagef("user %s not found", c.Param("id"))
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writer.Data(c, http.StatusOK, user)
}

// GetByEmail handles GET /users/by-email/{email}.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.uc.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writer.Data(c, http.StatusOK, user)
}

// UpdateByEmail handles PUT /users/by-email/{email}. Only the fields present in
// the body change.
func (h *UserHandler) UpdateByEmail(c echo.Context) error {
	var input usecase.UpdateUserInput
	if err := bindBody(c, &input, false); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	principal, _ := deliverycontext.GetPrincipal(c)
	user, err := h.uc.UpdateByEmail(c.Request().Context(), principal, c.Param("email"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.writer.Status(c, http.StatusOK, fmt.Sprintf("User %d updated", user.ID))
}

// DeleteByEmail handles DELETE /users/by-email/{email}.
func (h *UserHandler) DeleteByEmail(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)
	if err := h.uc.DeleteByEmail(c.Request().Context(), principal, c.Param("email")); err != nil {
		return errors.WithStack(err)
	}

	return h.writer.NoContent(c)
}

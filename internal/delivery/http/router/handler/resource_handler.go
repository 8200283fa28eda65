// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "bizdesk/internal/delivery/context"
	"bizdesk/internal/delivery/http/response"
	"bizdesk/internal/domain/entity"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/errors"
	"bizdesk/internal/usecase"
	"bizdesk/internal/util"
)

// sortParam is the query parameter holding the sort specification of list endpoints.
const sortParam = "sort"

// Payload is the writable representation of E accepted in request bodies.
type Payload[E entity.Entity] interface {
	// From seeds the payload from a stored record, so that an update body only
	// overlays the fields it carries.
	From(e E)
	// Apply copies the payload onto e.
	Apply(e E)
	// References lists the foreign keys the payload carries.
	References() []usecase.Reference
}

// Resource describes one REST collection.
type Resource[E entity.Entity] struct {
	// Path is the collection path used in Location headers, e.g. "/companies".
	Path string
	// Label names a single record in response messages.
	Label string
	// Target is set when other records hold foreign keys to this one; Delete
	// then refuses while such records exist.
	Target     usecase.Target
	NewPayload func() Payload[E]
	// ParentField and ParentTarget configure ListByParent: the criteria key
	// filtered on and the kind of record the parent id points at.
	ParentField  string
	ParentTarget usecase.Target
}

// ResourceDeps holds the collaborators every resource handler shares, injected by Fx.
type ResourceDeps struct {
	fx.In

	TxManager  repository.TransactionManager
	References usecase.ReferenceChecker
	Writer     *response.Writer
	Logger     *slog.Logger
}

// ResourceHandler implements create, list, get, update and delete for one entity type.
type ResourceHandler[E entity.Entity] struct {
	resource  Resource[E]
	repo      repository.Repository[E]
	txManager repository.TransactionManager
	refs      usecase.ReferenceChecker
	writer    *response.Writer
	logger    *slog.Logger
}

// NewResourceHandler builds the handler of resource over repo.
func NewResourceHandler[E entity.Entity](resource Resource[E], repo repository.Repository[E], deps ResourceDeps) *ResourceHandler[E] {
	return &ResourceHandler[E]{
		resource:  resource,
		repo:      repo,
		txManager: deps.TxManager,
		refs:      deps.References,
		writer:    deps.Writer,
		logger:    deps.Logger,
	}
}

func (h *ResourceHandler[E]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// Create handles POST on the collection.
func (h *ResourceHandler[E]) Create(c echo.Context) error {
	payload := h.resource.NewPayload()
	if err := bindBody(c, payload, true); err != nil {
		return err
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	record := entity.New[E]()
	payload.Apply(record)

	ctx := c.Request().Context()
	err := h.txManager.Execute(ctx, func(ctx context.Context) error {
		if err := h.refs.Check(ctx, payload.References()...); err != nil {
			return err
		}

		return h.repo.Add(ctx, record)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", h.resource.Label)
	}

	h.log(ctx).Info("Record created", slog.String("resource", h.resource.Label), slog.Int64("id", record.GetID()))

	location := fmt.Sprintf("%s/%d", h.resource.Path, record.GetID())

	return h.writer.Created(c, location, fmt.Sprintf("%s %d created", h.resource.Label, record.GetID()))
}

// List handles GET on the collection. Query parameters other than sort are
// exact-match criteria.
func (h *ResourceHandler[E]) List(c echo.Context) error {
	return h.list(c, queryCriteria(c))
}

// ListByParent handles GET on a nested collection such as /companies/{id}/customers.
func (h *ResourceHandler[E]) ListByParent(c echo.Context) error {
	parentID, err := util.ParseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound.WithMessagef("%s %s not found", h.resource.ParentTarget, c.Param("id"))
	}
	if err := h.refs.Exists(c.Request().Context(), h.resource.ParentTarget, parentID); err != nil {
		return err
	}

	criteria := queryCriteria(c)
	criteria[h.resource.ParentField] = parentID

	return h.list(c, criteria)
}

func (h *ResourceHandler[E]) list(c echo.Context, criteria repository.Criteria) error {
	order := repository.ParseOrder(c.QueryParam(sortParam))

	records, err := h.repo.GetByOrder(c.Request().Context(), criteria, order)
	if err != nil {
		return mapCriteriaError(err)
	}

	return h.writer.Data(c, http.StatusOK, records)
}

// Get handles GET on a single record.
func (h *ResourceHandler[E]) Get(c echo.Context) error {
	id, err := h.recordID(c)
	if err != nil {
		return err
	}

	record, err := h.repo.GetOne(c.Request().Context(), id)
	if err != nil {
		return h.mapNotFound(err, id)
	}

	return h.writer.Data(c, http.StatusOK, record)
}

// Update handles PUT on a single record: the stored record seeds the payload,
// the body overlays it and the result is validated before it is written back.
func (h *ResourceHandler[E]) Update(c echo.Context) error {
	id, err := h.recordID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	err = h.txManager.Execute(ctx, func(ctx context.Context) error {
		record, err := h.repo.GetOne(ctx, id)
		if err != nil {
			return h.mapNotFound(err, id)
		}

		payload := h.resource.NewPayload()
		payload.From(record)
		if err := bindBody(c, payload, false); err != nil {
			return err
		}
		if err := c.Validate(payload); err != nil {
			return err
		}
		if err := h.refs.Check(ctx, payload.References()...); err != nil {
			return err
		}

		payload.Apply(record)

		return h.repo.Update(ctx, record)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to update %s %d", h.resource.Label, id)
	}

	h.log(ctx).Info("Record updated", slog.String("resource", h.resource.Label), slog.Int64("id", id))

	return h.writer.Status(c, http.StatusOK, fmt.Sprintf("%s %d updated", h.resource.Label, id))
}

// Delete handles DELETE on a single record.
func (h *ResourceHandler[E]) Delete(c echo.Context) error {
	id, err := h.recordID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	err = h.txManager.Execute(ctx, func(ctx context.Context) error {
		record, err := h.repo.GetOne(ctx, id)
		if err != nil {
			return h.mapNotFound(err, id)
		}
		if h.resource.Target != "" {
			if err := h.refs.InUse(ctx, h.resource.Target, id); err != nil {
				return err
			}
		}

		return h.mapNotFound(h.repo.Delete(ctx, record), id)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s %d", h.resource.Label, id)
	}

	h.log(ctx).Info("Record deleted", slog.String("resource", h.resource.Label), slog.Int64("id", id))

	return h.writer.NoContent(c)
}

func (h *ResourceHandler[E]) recordID(c echo.Context) (int64, error) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return 0, domainerrors.ErrNotFound.WithMessagef("%s %s not found", h.resource.Label, c.Param("id"))
	}

	return id, nil
}

func (h *ResourceHandler[E]) mapNotFound(err error, id int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrNotFound.WithMessagef("%s %d not found", h.resource.Label, id)
	}

	return err
}

// bindBody decodes the JSON body into dst. Fields absent from the body keep
// their current values in dst.
func bindBody(c echo.Context, dst any, required bool) error {
	err := c.Echo().JSONSerializer.Deserialize(c, dst)
	if errors.Is(err, io.EOF) {
		if required {
			return domainerrors.ErrValidationFailed.WithMessage("Request body is required")
		}

		return nil
	}
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Malformed JSON body").WithDetails(err.Error())
	}

	return nil
}

// queryCriteria turns every query parameter except sort into a criteria entry.
// Repeated parameters use their first value.
func queryCriteria(c echo.Context) repository.Criteria {
	criteria := make(repository.Criteria)
	for key, values := range c.QueryParams() {
		if key == sortParam || len(values) == 0 {
			continue
		}
		criteria[key] = values[0]
	}

	return criteria
}

// mapCriteriaError maps unknown filter or sort fields onto a 400.
func mapCriteriaError(err error) error {
	if errors.Is(err, repository.ErrInvalidCriteria) {
		return domainerrors.ErrValidationFailed.WithMessage(err.Error())
	}

	return err
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"strings"

	"bizdesk/internal/domain/entity"
	"bizdesk/internal/errors"
)

var (
	// ErrNotFound is returned when no record matches an id or criteria lookup.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCriteria is returned when a criteria or sort key names no field of the entity.
	ErrInvalidCriteria = errors.New("invalid criteria")
)

// Criteria is an exact-match conjunction of field values, keyed by the entity's
// JSON field names. Values may be typed or raw strings taken from a query string.
type Criteria map[string]any

// OrderBy is a single sort key.
type OrderBy struct {
	Field string
	Desc  bool
}

// Order is an ordered list of sort keys.
type Order []OrderBy

// ParseOrder reads a comma separated sort specification such as "name,-created_at".
// A leading '-' sorts descending; empty keys are skipped.
func ParseOrder(raw string) Order {
	var order Order
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(strings.TrimPrefix(part, "-"), "+")
		if field == "" {
			continue
		}

		order = append(order, OrderBy{Field: field, Desc: desc})
	}

	return order
}

// Repository is the generic data-access contract over one entity type.
// Every backend failure surfaces as a *domainerrors.PersistenceError.
type Repository[E entity.Entity] interface {
	// Add inserts e and assigns its generated id.
	Add(ctx context.Context, e E) error

	// GetOne loads the record with the given id, or returns ErrNotFound.
	GetOne(ctx context.Context, id int64) (E, error)

	// GetOneBy loads the first record matching criteria, or returns ErrNotFound.
	GetOneBy(ctx context.Context, criteria Criteria) (E, error)

	// GetAllBy returns every record matching criteria; empty criteria returns all rows.
	// Ordering is unspecified.
	GetAllBy(ctx context.Context, criteria Criteria) ([]E, error)

	// GetByOrder is GetAllBy with an explicit sort specification.
	GetByOrder(ctx context.Context, criteria Criteria, order Order) ([]E, error)

	// Update writes the current state of a previously loaded record back to the store.
	Update(ctx context.Context, e E) error

	// Delete removes the record by identity.
	Delete(ctx context.Context, e E) error
}

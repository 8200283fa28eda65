// Package memory is an in-process repository backend. It keeps clones of the
// stored entities in a map and serves local development and end-to-end tests.
package memory

import (
	"cmp"
	"context"
	"reflect"
	"slices"
	"sync"
	"time"

	"bizdesk/internal/domain/entity"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/infra/persistence/fields"
)

type memoryRepository[E entity.Entity] struct {
	mu     sync.RWMutex
	rows   map[int64]E
	nextID int64
	fields *fields.Set
	now    func() time.Time
}

// NewRepository creates an empty in-memory repository for entity type E.
func NewRepository[E entity.Entity]() repository.Repository[E] {
	return &memoryRepository[E]{
		rows:   make(map[int64]E),
		fields: fields.For[E](),
		now:    time.Now,
	}
}

func (r *memoryRepository[E]) Add(_ context.Context, e E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	e.SetID(r.nextID)
	touch(e, r.now(), true)
	r.rows[e.GetID()] = clone(e)

	return nil
}

func (r *memoryRepository[E]) GetOne(_ context.Context, id int64) (E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.rows[id]
	if !ok {
		var zero E

		return zero, repository.ErrNotFound
	}

	return clone(stored), nil
}

func (r *memoryRepository[E]) GetOneBy(ctx context.Context, criteria repository.Criteria) (E, error) {
	var zero E

	// Lowest id first, matching the primary-key ordering of the SQL backend.
	matches, err := r.GetByOrder(ctx, criteria, repository.Order{{Field: "id"}})
	if err != nil {
		return zero, err
	}
	if len(matches) == 0 {
		return zero, repository.ErrNotFound
	}

	return matches[0], nil
}

func (r *memoryRepository[E]) GetAllBy(ctx context.Context, criteria repository.Criteria) ([]E, error) {
	return r.GetByOrder(ctx, criteria, repository.Order{{Field: "id"}})
}

func (r *memoryRepository[E]) GetByOrder(_ context.Context, criteria repository.Criteria, order repository.Order) ([]E, error) {
	conditions, err := r.fields.Conditions(criteria)
	if err != nil {
		return nil, err
	}
	columns, err := r.fields.Order(order)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	list := make([]E, 0, len(r.rows))
	for _, stored := range r.rows {
		if matches(stored, conditions) {
			list = append(list, clone(stored))
		}
	}
	r.mu.RUnlock()

	slices.SortStableFunc(list, func(a, b E) int {
		for _, column := range columns {
			av, aok := column.Field.Value(a)
			bv, bok := column.Field.Value(b)
			c := compareValues(av, aok, bv, bok)
			if column.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}

		return cmp.Compare(a.GetID(), b.GetID())
	})

	return list, nil
}

func (r *memoryRepository[E]) Update(_ context.Context, e E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[e.GetID()]; !ok {
		return repository.ErrNotFound
	}

	touch(e, r.now(), false)
	r.rows[e.GetID()] = clone(e)

	return nil
}

// Delete enforces no foreign keys. Callers reject deletes of referenced
// records through usecase.ReferenceChecker.InUse on every backend.
func (r *memoryRepository[E]) Delete(_ context.Context, e E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[e.GetID()]; !ok {
		return repository.ErrNotFound
	}

	delete(r.rows, e.GetID())

	return nil
}

// clone copies e and the values behind its pointer fields, so callers never
// share memory with the stored row.
func clone[E entity.Entity](e E) E {
	cloned := entity.Clone(e)

	v := reflect.ValueOf(cloned).Elem()
	for i := range v.NumField() {
		f := v.Field(i)
		if f.Kind() != reflect.Pointer || f.IsNil() || !f.CanSet() {
			continue
		}

		copied := reflect.New(f.Type().Elem())
		copied.Elem().Set(f.Elem())
		f.Set(copied)
	}

	return cloned
}

// touch maintains the CreatedAt/UpdatedAt columns the way GORM's autoTime does.
func touch(e entity.Entity, now time.Time, created bool) {
	v := reflect.ValueOf(e).Elem()
	if created {
		if f := v.FieldByName("CreatedAt"); f.IsValid() && f.CanSet() && f.Interface().(time.Time).IsZero() {
			f.Set(reflect.ValueOf(now))
		}
	}
	if f := v.FieldByName("UpdatedAt"); f.IsValid() && f.CanSet() {
		f.Set(reflect.ValueOf(now))
	}
}

func matches(e any, conditions []fields.Condition) bool {
	for _, condition := range conditions {
		value, ok := condition.Field.Value(e)
		if !ok || compareValues(value, true, condition.Value, true) != 0 {
			return false
		}
	}

	return true
}

// compareValues orders two field values of the same type. Missing (nil) values sort first.
func compareValues(a any, aok bool, b any, bok bool) int {
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(av.Int(), bv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp.Compare(av.Uint(), bv.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(av.Float(), bv.Float())
	case reflect.String:
		return cmp.Compare(av.String(), bv.String())
	case reflect.Bool:
		switch {
		case av.Bool() == bv.Bool():
			return 0
		case !av.Bool():
			return -1
		default:
			return 1
		}
	default:
		if reflect.DeepEqual(a, b) {
			return 0
		}

		return 1
	}
}

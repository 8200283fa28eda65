package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bizdesk/internal/domain/entity"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/errors"
	"bizdesk/internal/infra/persistence/fields"
)

// gormRepository implements repository.Repository for any entity using GORM.
type gormRepository[E entity.Entity] struct {
	db     *gorm.DB
	fields *fields.Set
	table  string
}

// NewRepository creates a new repository for entity type E.
func NewRepository[E entity.Entity](db *gorm.DB) repository.Repository[E] {
	return &gormRepository[E]{
		db:     db,
		fields: fields.For[E](),
		table:  entity.New[E]().TableName(),
	}
}

// conn returns the transaction carried by ctx, or the base connection.
func (r *gormRepository[E]) conn(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx.WithContext(ctx)
	}

	return r.db.WithContext(ctx)
}

func (r *gormRepository[E]) op(name string) string {
	return r.table + "." + name
}

// Add inserts e; GORM writes the generated id back into it.
func (r *gormRepository[E]) Add(ctx context.Context, e E) error {
	if err := r.conn(ctx).Create(e).Error; err != nil {
		return translateError(r.op("add"), err)
	}

	return nil
}

func (r *gormRepository[E]) GetOne(ctx context.Context, id int64) (E, error) {
	found := entity.New[E]()
	if err := r.conn(ctx).First(found, id).Error; err != nil {
		var zero E
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, repository.ErrNotFound
		}

		return zero, translateError(r.op("get_one"), err)
	}

	return found, nil
}

func (r *gormRepository[E]) GetOneBy(ctx context.Context, criteria repository.Criteria) (E, error) {
	var zero E

	query, err := r.where(r.conn(ctx), criteria)
	if err != nil {
		return zero, err
	}

	found := entity.New[E]()
	if err := query.First(found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, repository.ErrNotFound
		}

		return zero, translateError(r.op("get_one_by"), err)
	}

	return found, nil
}

func (r *gormRepository[E]) GetAllBy(ctx context.Context, criteria repository.Criteria) ([]E, error) {
	return r.GetByOrder(ctx, criteria, nil)
}

func (r *gormRepository[E]) GetByOrder(ctx context.Context, criteria repository.Criteria, order repository.Order) ([]E, error) {
	query, err := r.where(r.conn(ctx), criteria)
	if err != nil {
		return nil, err
	}

	columns, err := r.fields.Order(order)
	if err != nil {
		return nil, err
	}
	for _, column := range columns {
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column.Field.Column},
			Desc:   column.Desc,
		})
	}

	list := make([]E, 0)
	if err := query.Find(&list).Error; err != nil {
		return nil, translateError(r.op("get_all_by"), err)
	}

	return list, nil
}

// Update writes every column of e, keyed by its id.
func (r *gormRepository[E]) Update(ctx context.Context, e E) error {
	result := r.conn(ctx).Model(e).Select("*").Updates(e)
	if result.Error != nil {
		return translateError(r.op("update"), result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *gormRepository[E]) Delete(ctx context.Context, e E) error {
	result := r.conn(ctx).Delete(e)
	if result.Error != nil {
		return translateError(r.op("delete"), result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *gormRepository[E]) where(query *gorm.DB, criteria repository.Criteria) (*gorm.DB, error) {
	conditions, err := r.fields.Conditions(criteria)
	if err != nil {
		return nil, err
	}

	query = query.Model(entity.New[E]())
	for _, condition := range conditions {
		query = query.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: condition.Field.Column},
			Value:  condition.Value,
		})
	}

	return query, nil
}

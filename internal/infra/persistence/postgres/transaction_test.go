package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk/internal/domain/entity"
	"bizdesk/internal/errors"
)

func TestTransactionManager_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	repo := NewRepository[*entity.Company](db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(ctx context.Context) error {
		return repo.Add(ctx, &entity.Company{Name: "Acme"})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(context.Context) error {
		return boom
	})
	assert.True(t, errors.Is(err, boom))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(context.Context) error {
			panic("handler bug")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_NestedJoinsOuter(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(ctx context.Context) error {
		return tm.Execute(ctx, func(inner context.Context) error {
			_, ok := txFromContext(inner)
			assert.True(t, ok)

			return nil
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := tm.Execute(context.Background(), func(context.Context) error {
		called = true

		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}

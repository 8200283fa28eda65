package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk/internal/domain/entity"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/errors"
	"bizdesk/internal/usecase"
)

func TestReferenceChecker_Check(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	company := &entity.Company{Name: "Acme"}
	require.NoError(t, s.companies.Add(ctx, company))

	checker := NewReferenceChecker(s.references())

	t.Run("existing and skipped references pass", func(t *testing.T) {
		err := checker.Check(ctx,
			usecase.Ref("company_id", usecase.TargetCompany, company.ID),
			usecase.OptionalRef("customer_id", usecase.TargetCustomer, nil),
		)
		assert.NoError(t, err)
	})

	t.Run("missing reference is a validation error", func(t *testing.T) {
		err := checker.Check(ctx, usecase.Ref("customer_id", usecase.TargetCustomer, 99))

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "customer_id: customer 99 does not exist", appErr.Message())
	})
}

func TestReferenceChecker_Exists(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	checker := NewReferenceChecker(s.references())

	err := checker.Exists(ctx, usecase.TargetProject, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	project := &entity.Project{Name: "Roll-out", Status: entity.StatusOpen}
	require.NoError(t, s.projects.Add(ctx, project))
	assert.NoError(t, checker.Exists(ctx, usecase.TargetProject, project.ID))

	assert.Error(t, checker.Exists(ctx, usecase.Target("invoice"), 1))
}

func TestReferenceChecker_InUse(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	checker := NewReferenceChecker(s.references())

	company := &entity.Company{Name: "Acme"}
	require.NoError(t, s.companies.Add(ctx, company))
	jane := &entity.User{Name: "Jane", Email: "jane@x.com", Role: entity.RoleMember}
	require.NoError(t, s.users.Add(ctx, jane))

	assert.NoError(t, checker.InUse(ctx, usecase.TargetCompany, company.ID))
	assert.NoError(t, checker.InUse(ctx, usecase.TargetUser, jane.ID))

	require.NoError(t, s.customers.Add(ctx, &entity.Customer{CompanyID: company.ID, Name: "Globex"}))
	require.NoError(t, s.messages.Add(ctx, &entity.Message{SenderID: 7, RecipientID: jane.ID, Subject: "hi", Body: "hello"}))

	tests := []struct {
		name    string
		target  usecase.Target
		id      int64
		message string
	}{
		{name: "company with customers", target: usecase.TargetCompany, id: company.ID, message: "company 1 is still referenced by customers.company_id"},
		{name: "message recipient", target: usecase.TargetUser, id: jane.ID, message: "user 1 is still referenced by messages.recipient_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checker.InUse(ctx, tt.target, tt.id)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}

	assert.NoError(t, checker.InUse(ctx, usecase.Target("invoice"), 1))
}

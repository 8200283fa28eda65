package impl

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"bizdesk/internal/domain/entity"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/domain/service"
	"bizdesk/internal/infra/auth"
	"bizdesk/internal/infra/persistence/memory"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueToken(subject string) (string, time.Time, error) {
	args := m.Called(subject)

	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) VerifyToken(token string) (*service.Principal, error) {
	args := m.Called(token)
	principal, _ := args.Get(0).(*service.Principal)

	return principal, args.Error(1)
}

func (m *mockTokenService) AuthenticateRequest(header http.Header) (*service.Principal, error) {
	args := m.Called(header.Get("Authorization"))
	principal, _ := args.Get(0).(*service.Principal)

	return principal, args.Error(1)
}

// store bundles in-memory repositories for service tests.
type store struct {
	companies repository.Repository[*entity.Company]
	customers repository.Repository[*entity.Customer]
	suppliers repository.Repository[*entity.Supplier]
	projects  repository.Repository[*entity.Project]
	users     repository.Repository[*entity.User]
	tasks     repository.Repository[*entity.Task]
	messages  repository.Repository[*entity.Message]
}

func newStore() store {
	return store{
		companies: memory.NewRepository[*entity.Company](),
		customers: memory.NewRepository[*entity.Customer](),
		suppliers: memory.NewRepository[*entity.Supplier](),
		projects:  memory.NewRepository[*entity.Project](),
		users:     memory.NewRepository[*entity.User](),
		tasks:     memory.NewRepository[*entity.Task](),
		messages:  memory.NewRepository[*entity.Message](),
	}
}

func (s store) references() ReferenceCheckerParams {
	return ReferenceCheckerParams{
		Companies:  s.companies,
		Customers:  s.customers,
		Suppliers:  s.suppliers,
		Projects:   s.projects,
		Users:      s.users,
		Products:   memory.NewRepository[*entity.Product](),
		Tasks:      s.tasks,
		Invoices:   memory.NewRepository[*entity.Invoice](),
		Estimates:  memory.NewRepository[*entity.Estimate](),
		OrderForms: memory.NewRepository[*entity.OrderForm](),
		Messages:   s.messages,
	}
}

func testHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithPolicy(bcrypt.MinCost, nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

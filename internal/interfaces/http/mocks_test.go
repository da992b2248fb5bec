package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/desafio/contas-api/internal/application/usecase"
	"github.com/desafio/contas-api/internal/domain/entity"
	"github.com/desafio/contas-api/internal/domain/repository"
	apphttp "github.com/desafio/contas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type customerRepoMock struct {
	mock.Mock
}

func (m *customerRepoMock) Create(customer *entity.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *customerRepoMock) GetByID(id int64) (*entity.Customer, error) {
	args := m.Called(id)
	var c *entity.Customer
	if v := args.Get(0); v != nil {
		c = v.(*entity.Customer)
	}
	return c, args.Error(1)
}

func (m *customerRepoMock) ExistsByCPF(cpf string) (bool, error) {
	args := m.Called(cpf)
	return args.Bool(0), args.Error(1)
}

func (m *customerRepoMock) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *customerRepoMock) List(limit, offset int, sortBy string, descending bool) ([]*entity.Customer, error) {
	args := m.Called(limit, offset, sortBy, descending)
	var list []*entity.Customer
	if v := args.Get(0); v != nil {
		list = v.([]*entity.Customer)
	}
	return list, args.Error(1)
}

func (m *customerRepoMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *customerRepoMock) Update(customer *entity.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *customerRepoMock) Delete(id int64) error {
	return m.Called(id).Error(0)
}

type accountRepoMock struct {
	mock.Mock
}

func (m *accountRepoMock) Create(account *entity.Account) error {
	return m.Called(account).Error(0)
}

func (m *accountRepoMock) GetByID(id int64) (*entity.Account, error) {
	args := m.Called(id)
	var a *entity.Account
	if v := args.Get(0); v != nil {
		a = v.(*entity.Account)
	}
	return a, args.Error(1)
}

func (m *accountRepoMock) ListByCustomer(customerID int64) ([]*entity.Account, error) {
	args := m.Called(customerID)
	var list []*entity.Account
	if v := args.Get(0); v != nil {
		list = v.([]*entity.Account)
	}
	return list, args.Error(1)
}

func (m *accountRepoMock) Update(account *entity.Account) error {
	return m.Called(account).Error(0)
}

func (m *accountRepoMock) DeleteByCustomer(customerID int64) error {
	return m.Called(customerID).Error(0)
}

type txRunnerFake struct {
	customerRepo repository.CustomerRepository
	accountRepo  repository.AccountRepository
}

func (t *txRunnerFake) Run(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	accountRepo repository.AccountRepository,
) error) error {
	return fn(t.customerRepo, t.accountRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la app Fiber con el router real y los usecases reales
// sobre repos dobles; solo la persistencia está simulada.
func buildTestApp(t *testing.T, customers *customerRepoMock, accounts *accountRepoMock) *fiber.App {
	t.Helper()

	validator, err := apphttp.NewRequestValidator()
	require.NoError(t, err, "el validador debe construirse")

	customerUC := usecase.NewCustomerUseCase(customers, &txRunnerFake{customerRepo: customers, accountRepo: accounts})
	accountUC := usecase.NewAccountUseCase(accounts, customerUC)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: customerUC,
		AccountUC:  accountUC,
		Validator:  validator,
	})
	return app
}

// doJSON lanza una petición con body JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode deserializa el body de la respuesta en out.
func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

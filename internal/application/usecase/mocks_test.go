package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/desafio/contas-api/internal/domain/entity"
	"github.com/desafio/contas-api/internal/domain/repository"
)

// customerRepoMock doble de repository.CustomerRepository.
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

// accountRepoMock doble de repository.AccountRepository.
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

// txRunnerFake ejecuta el callback directamente con los repos dados,
// sin transacción real.
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

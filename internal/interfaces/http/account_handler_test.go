package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/desafio/contas-api/internal/application/dto"
	"github.com/desafio/contas-api/internal/domain/entity"
)

const validAccountBody = `{"reference":"01-2023","amount":100.0,"status":"PAID"}`

func testOwner() *entity.Customer {
	return &entity.Customer{ID: 1, Name: "Teste", CPF: "12345678900"}
}

func TestPostConta_Creada(t *testing.T) {
	customers := new(customerRepoMock)
	customers.On("GetByID", int64(1)).Return(testOwner(), nil)

	accounts := new(accountRepoMock)
	accounts.On("Create", mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) { args.Get(0).(*entity.Account).ID = 10 }).
		Return(nil)

	app := buildTestApp(t, customers, accounts)
	resp := doJSON(t, app, fiber.MethodPost, "/clientes/1/contas", validAccountBody)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.AccountResponse
	decode(t, resp, &created)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, "PAID", created.Status)
	require.NotNil(t, created.Customer, "la cuenta creada debe anidar al titular")
	assert.Equal(t, int64(1), created.Customer.ID)
}

// Titular inexistente en el alta: falla de consulta del negocio → 400, no 404.
func TestPostConta_ClienteNoExiste(t *testing.T) {
	customers := new(customerRepoMock)
	customers.On("GetByID", int64(9)).Return(nil, nil)

	app := buildTestApp(t, customers, new(accountRepoMock))
	resp := doJSON(t, app, fiber.MethodPost, "/clientes/9/contas", validAccountBody)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_QUERY", body.Code)
}

func TestPostConta_ReferenciaMalformada(t *testing.T) {
	app := buildTestApp(t, new(customerRepoMock), new(accountRepoMock))
	resp := doJSON(t, app, fiber.MethodPost, "/clientes/1/contas",
		`{"reference":"13-2024","amount":100.0,"status":"PAID"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ValidationErrorResponse
	decode(t, resp, &body)
	require.NotEmpty(t, body.Violations, "el mes 13 no pasa el patrón MM-YYYY")
	assert.Equal(t, "Reference", body.Violations[0].Field)
}

func TestPostConta_ValorNegativo(t *testing.T) {
	customers := new(customerRepoMock)
	customers.On("GetByID", int64(1)).Return(testOwner(), nil)

	app := buildTestApp(t, customers, new(accountRepoMock))
	resp := doJSON(t, app, fiber.MethodPost, "/clientes/1/contas",
		`{"reference":"01-2023","amount":-5.0,"status":"PAID"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_FIELD", body.Code)
}

func TestPostConta_CanceladaRechazada(t *testing.T) {
	customers := new(customerRepoMock)
	customers.On("GetByID", int64(1)).Return(testOwner(), nil)

	app := buildTestApp(t, customers, new(accountRepoMock))
	resp := doJSON(t, app, fiber.MethodPost, "/clientes/1/contas",
		`{"reference":"01-2023","amount":100.0,"status":"CANCELLED"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_FIELD", body.Code)
}

func TestPutConta_NoExiste(t *testing.T) {
	accounts := new(accountRepoMock)
	accounts.On("GetByID", int64(99)).Return(nil, nil)

	app := buildTestApp(t, new(customerRepoMock), accounts)
	resp := doJSON(t, app, fiber.MethodPut, "/contas/99", validAccountBody)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPutConta_Actualizada(t *testing.T) {
	existing := &entity.Account{
		ID: 7, Reference: "01-2023", Amount: decimal.NewFromInt(50),
		Status: entity.StatusPending, CustomerID: 1, Customer: testOwner(),
	}
	accounts := new(accountRepoMock)
	accounts.On("GetByID", int64(7)).Return(existing, nil)
	accounts.On("Update", mock.AnythingOfType("*entity.Account")).Return(nil)

	app := buildTestApp(t, new(customerRepoMock), accounts)
	resp := doJSON(t, app, fiber.MethodPut, "/contas/7",
		`{"reference":"02-2023","amount":75.0,"status":"PAID"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.AccountResponse
	decode(t, resp, &updated)
	assert.Equal(t, "02-2023", updated.Reference)
	assert.Equal(t, "PAID", updated.Status)
}

func TestDeleteConta_BajaLogica(t *testing.T) {
	existing := &entity.Account{
		ID: 7, Reference: "01-2023", Amount: decimal.NewFromInt(50),
		Status: entity.StatusPaid, CustomerID: 1, Customer: testOwner(),
	}
	accounts := new(accountRepoMock)
	accounts.On("GetByID", int64(7)).Return(existing, nil)
	accounts.On("Update", mock.MatchedBy(func(a *entity.Account) bool {
		return a.ID == 7 && a.Status == entity.StatusCancelled
	})).Return(nil)

	app := buildTestApp(t, new(customerRepoMock), accounts)
	resp := doJSON(t, app, fiber.MethodDelete, "/contas/7", "")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	accounts.AssertExpectations(t)
}

func TestDeleteConta_NoExiste(t *testing.T) {
	accounts := new(accountRepoMock)
	accounts.On("GetByID", int64(99)).Return(nil, nil)

	app := buildTestApp(t, new(customerRepoMock), accounts)
	resp := doJSON(t, app, fiber.MethodDelete, "/contas/99", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetContasDeCliente_NoExiste(t *testing.T) {
	customers := new(customerRepoMock)
	customers.On("GetByID", int64(9)).Return(nil, nil)

	app := buildTestApp(t, customers, new(accountRepoMock))
	resp := doJSON(t, app, fiber.MethodGet, "/clientes/9/contas", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetContasDeCliente_Lista(t *testing.T) {
	customers := new(customerRepoMock)
	customers.On("GetByID", int64(1)).Return(testOwner(), nil)

	accounts := new(accountRepoMock)
	accounts.On("ListByCustomer", int64(1)).Return([]*entity.Account{
		{ID: 1, Reference: "01-2023", Amount: decimal.NewFromInt(100), Status: entity.StatusPaid, CustomerID: 1},
	}, nil)

	app := buildTestApp(t, customers, accounts)
	resp := doJSON(t, app, fiber.MethodGet, "/clientes/1/contas", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.AccountResponse
	decode(t, resp, &list)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Customer)
}

func TestGetConta_ConTitular(t *testing.T) {
	accounts := new(accountRepoMock)
	accounts.On("GetByID", int64(8)).Return(&entity.Account{
		ID: 8, Reference: "03-2024", Amount: decimal.NewFromInt(10),
		Status: entity.StatusPending, CustomerID: 1, Customer: testOwner(),
	}, nil)

	app := buildTestApp(t, new(customerRepoMock), accounts)
	resp := doJSON(t, app, fiber.MethodGet, "/contas/8", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var account dto.AccountResponse
	decode(t, resp, &account)
	require.NotNil(t, account.Customer)
	assert.Equal(t, "12345678900", account.Customer.CPF)
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/desafio/contas-api/internal/domain/entity"
)

// AccountRequest body para POST /clientes/:idCliente/contas y PUT /contas/:id.
// Amount es puntero para distinguir "ausente" de 0 en la validación.
type AccountRequest struct {
	Reference string           `json:"reference" validate:"required,mmyyyy"`
	Amount    *decimal.Decimal `json:"amount" validate:"required"`
	Status    string           `json:"status" validate:"required,oneof=PAID PENDING CANCELLED"`
}

// ToEntity convierte el body en la entidad de dominio (sin ID ni cliente).
func (r AccountRequest) ToEntity() *entity.Account {
	acc := &entity.Account{
		Reference: r.Reference,
		Status:    entity.AccountStatus(r.Status),
	}
	if r.Amount != nil {
		acc.Amount = *r.Amount
	}
	return acc
}

// AccountResponse cuenta en respuestas, con el cliente anidado cuando se conoce.
type AccountResponse struct {
	ID        int64             `json:"id"`
	Reference string            `json:"reference"`
	Amount    decimal.Decimal   `json:"amount"`
	Status    string            `json:"status"`
	Customer  *CustomerResponse `json:"customer,omitempty"`
}

// AccountResponseFrom convierte la entidad en su representación de salida.
func AccountResponseFrom(a *entity.Account) *AccountResponse {
	resp := &AccountResponse{
		ID:        a.ID,
		Reference: a.Reference,
		Amount:    a.Amount,
		Status:    string(a.Status),
	}
	if a.Customer != nil {
		resp.Customer = CustomerResponseFrom(a.Customer)
	}
	return resp
}

package dto

import "github.com/desafio/contas-api/internal/domain/entity"

// CustomerRequest body para POST /clientes y PUT /clientes/:id.
type CustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	CPF   string `json:"cpf" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// ToEntity convierte el body en la entidad de dominio (sin ID).
func (r CustomerRequest) ToEntity() *entity.Customer {
	return &entity.Customer{
		Name:  r.Name,
		CPF:   r.CPF,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponseFrom convierte la entidad en su representación de salida.
func CustomerResponseFrom(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		CPF:   c.CPF,
		Email: c.Email,
		Phone: c.Phone,
	}
}

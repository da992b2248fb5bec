package entity

import "github.com/shopspring/decimal"

// AccountStatus situación de una cuenta mensual.
type AccountStatus string

const (
	StatusPaid      AccountStatus = "PAID"
	StatusPending   AccountStatus = "PENDING"
	StatusCancelled AccountStatus = "CANCELLED"
)

// Valid indica si el valor pertenece al conjunto de situaciones conocidas.
func (s AccountStatus) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Account representa una cuenta (factura mensual) de un cliente.
// CANCELLED es un estado terminal: solo se alcanza vía la baja lógica,
// nunca por el camino de escritura validado.
type Account struct {
	ID         int64
	Reference  string // período de referencia MM-YYYY, ej. "01-2024"
	Amount     decimal.Decimal
	Status     AccountStatus
	CustomerID int64
	Customer   *Customer
}

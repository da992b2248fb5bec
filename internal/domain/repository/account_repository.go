package repository

import "github.com/desafio/contas-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account.
// GetByID devuelve (nil, nil) cuando la cuenta no existe.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id int64) (*entity.Account, error)
	ListByCustomer(customerID int64) ([]*entity.Account, error)
	Update(account *entity.Account) error
	DeleteByCustomer(customerID int64) error
}

package repository

import "github.com/desafio/contas-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) cuando el cliente no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	ExistsByCPF(cpf string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	List(limit, offset int, sortBy string, descending bool) ([]*entity.Customer, error)
	Count() (int64, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
}

package usecase

import (
	"context"

	"github.com/desafio/contas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos
// atados a la misma tx. Se usa para la baja de clientes: las cuentas del
// cliente y el cliente se eliminan de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		accountRepo repository.AccountRepository,
	) error) error
}

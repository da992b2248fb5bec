package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/desafio/contas-api/internal/application/dto"
	"github.com/desafio/contas-api/internal/domain"
	"github.com/desafio/contas-api/internal/domain/entity"
	"github.com/desafio/contas-api/internal/domain/repository"
)

// CustomerUseCase reglas de negocio de clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	txRunner TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, txRunner TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, txRunner: txRunner}
}

// Register registra un nuevo cliente. CPF y email (cuando viene) deben ser
// únicos: la verificación aquí es el camino rápido; el constraint único de la
// base es la guardia autoritativa y el repo lo traduce al mismo error.
func (uc *CustomerUseCase) Register(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.CPF == "" {
		return nil, fmt.Errorf("nombre y CPF son obligatorios: %w", domain.ErrInvalidField)
	}

	exists, err := uc.repo.ExistsByCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateCPF
	}

	if in.Email != "" {
		exists, err = uc.repo.ExistsByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateEmail
		}
	}

	customer := in.ToEntity()
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return dto.CustomerResponseFrom(customer), nil
}

// GetByID busca un cliente por ID. Es la primitiva de existencia que reutilizan
// las demás operaciones mutadoras (incluidas las de cuentas).
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.findByID(id)
	if err != nil {
		return nil, err
	}
	return dto.CustomerResponseFrom(customer), nil
}

// Update sobrescribe nombre, email y CPF de un cliente existente.
// No re-verifica unicidad contra otros clientes (comportamiento heredado);
// el constraint único de la base sigue vigente y el repo lo traduce.
func (uc *CustomerUseCase) Update(id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.findByID(id)
	if err != nil {
		return nil, err
	}

	customer.Name = in.Name
	customer.Email = in.Email
	customer.CPF = in.CPF

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return dto.CustomerResponseFrom(customer), nil
}

// Delete elimina un cliente existente junto con sus cuentas, en una sola
// transacción (cascada explícita, sin depender de ON DELETE CASCADE).
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.findByID(id); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		accountRepo repository.AccountRepository,
	) error {
		if err := accountRepo.DeleteByCustomer(id); err != nil {
			return err
		}
		return customerRepo.Delete(id)
	})
}

// List devuelve una página de clientes con el total. Por defecto página 0,
// tamaño 10, orden por nombre ascendente.
func (uc *CustomerUseCase) List(page dto.PageRequest) (*dto.PagedResponse[*dto.CustomerResponse], error) {
	page.Defaults()
	sortBy, descending := parseSort(page.Sort)

	customers, err := uc.repo.List(page.Size, page.Offset(), sortBy, descending)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, dto.CustomerResponseFrom(c))
	}
	return &dto.PagedResponse[*dto.CustomerResponse]{
		Items: items,
		Page:  page.Page,
		Size:  page.Size,
		Total: total,
	}, nil
}

// findByID devuelve la entidad o ErrNotFound. Compartida con AccountUseCase.
func (uc *CustomerUseCase) findByID(id int64) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("no se encontró cliente con ID %d: %w", id, domain.ErrNotFound)
	}
	return customer, nil
}

// parseSort interpreta "campo" o "campo,desc" del query string.
func parseSort(sort string) (field string, descending bool) {
	parts := strings.SplitN(sort, ",", 2)
	field = strings.TrimSpace(parts[0])
	if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
		descending = true
	}
	return field, descending
}

package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/desafio/contas-api/internal/application/dto"
	"github.com/desafio/contas-api/internal/domain"
	"github.com/desafio/contas-api/internal/domain/entity"
	"github.com/desafio/contas-api/internal/domain/repository"
)

// AccountUseCase reglas de negocio de cuentas mensuales. Depende del caso de
// uso de clientes para resolver la existencia del titular.
type AccountUseCase struct {
	repo      repository.AccountRepository
	customers *CustomerUseCase
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository, customers *CustomerUseCase) *AccountUseCase {
	return &AccountUseCase{repo: repo, customers: customers}
}

// Register crea una cuenta bajo un cliente existente. El titular se resuelve
// primero; después corren las validaciones de negocio y recién ahí se persiste.
func (uc *AccountUseCase) Register(customerID int64, in dto.AccountRequest) (*dto.AccountResponse, error) {
	owner, err := uc.customers.findByID(customerID)
	if err != nil {
		return nil, err
	}

	account := in.ToEntity()
	account.CustomerID = owner.ID
	account.Customer = owner

	if err := uc.validate(account); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return dto.AccountResponseFrom(account), nil
}

// Update sobrescribe referencia, valor y situación de una cuenta existente.
// El titular se conserva del registro actual antes de validar: este camino
// nunca cambia el cliente dueño.
func (uc *AccountUseCase) Update(id int64, in dto.AccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.findByID(id)
	if err != nil {
		return nil, err
	}

	account.Reference = in.Reference
	if in.Amount != nil {
		account.Amount = *in.Amount
	}
	account.Status = entity.AccountStatus(in.Status)

	if err := uc.validate(account); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return dto.AccountResponseFrom(account), nil
}

// Delete es la baja lógica: marca la cuenta como CANCELLED y la persiste.
// Salta la validación a propósito, porque validate prohíbe CANCELLED y este
// es el único camino permitido hacia ese estado.
func (uc *AccountUseCase) Delete(id int64) error {
	account, err := uc.findByID(id)
	if err != nil {
		return err
	}
	account.Status = entity.StatusCancelled
	return uc.repo.Update(account)
}

// ListByCustomer devuelve las cuentas de un cliente existente, en el orden
// nativo del store.
func (uc *AccountUseCase) ListByCustomer(customerID int64) ([]*dto.AccountResponse, error) {
	owner, err := uc.customers.findByID(customerID)
	if err != nil {
		return nil, err
	}

	accounts, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		a.Customer = owner
		out = append(out, dto.AccountResponseFrom(a))
	}
	return out, nil
}

// GetByID busca una cuenta por ID, con el cliente titular anidado.
func (uc *AccountUseCase) GetByID(id int64) (*dto.AccountResponse, error) {
	account, err := uc.findByID(id)
	if err != nil {
		return nil, err
	}
	return dto.AccountResponseFrom(account), nil
}

// validate corre en todo alta y actualización, en este orden: valor no
// negativo, titular presente, situación distinta de CANCELLED.
func (uc *AccountUseCase) validate(account *entity.Account) error {
	if account.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("no se puede registrar una cuenta con valor menor que 0: %w", domain.ErrInvalidField)
	}
	if account.Customer == nil {
		return fmt.Errorf("no se puede registrar una cuenta sin cliente asociado: %w", domain.ErrInvalidField)
	}
	if account.Status == entity.StatusCancelled {
		return fmt.Errorf("no se puede registrar una cuenta con la situación %s: %w", entity.StatusCancelled, domain.ErrInvalidField)
	}
	return nil
}

func (uc *AccountUseCase) findByID(id int64) (*entity.Account, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("no se encontró cuenta con ID %d: %w", id, domain.ErrNotFound)
	}
	return account, nil
}

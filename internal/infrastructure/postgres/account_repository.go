package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/desafio/contas-api/internal/domain/entity"
	"github.com/desafio/contas-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta y deja en la entidad el ID asignado.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (reference, amount, status, customer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		account.Reference, account.Amount, string(account.Status), account.CustomerID,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID con el cliente titular anidado.
// Devuelve (nil, nil) si no existe.
func (r *AccountRepo) GetByID(id int64) (*entity.Account, error) {
	query := `
		SELECT a.id, a.reference, a.amount, a.status, a.customer_id,
		       c.id, c.name, c.cpf, COALESCE(c.email, ''), COALESCE(c.phone, '')
		FROM accounts a
		JOIN customers c ON c.id = a.customer_id
		WHERE a.id = $1`
	var a entity.Account
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Reference, &a.Amount, &a.Status, &a.CustomerID,
		&c.ID, &c.Name, &c.CPF, &c.Email, &c.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	a.Customer = &c
	return &a, nil
}

// ListByCustomer lista las cuentas de un cliente en orden de inserción.
func (r *AccountRepo) ListByCustomer(customerID int64) ([]*entity.Account, error) {
	query := `
		SELECT id, reference, amount, status, customer_id
		FROM accounts WHERE customer_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Reference, &a.Amount, &a.Status, &a.CustomerID); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza referencia, valor y situación de una cuenta.
// El customer_id no se toca: el titular es inmutable por este camino.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET reference = $2, amount = $3, status = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Reference, account.Amount, string(account.Status),
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todas las cuentas de un cliente. Se usa dentro de
// la transacción de baja del cliente (cascada explícita).
func (r *AccountRepo) DeleteByCustomer(customerID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete accounts by customer: %w", err)
	}
	return nil
}

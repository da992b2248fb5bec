package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/desafio/contas-api/internal/domain/entity"
	"github.com/desafio/contas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// Columnas permitidas para ordenar el listado. Cualquier otro valor cae en name.
var customerSortColumns = map[string]string{
	"name":  "name",
	"cpf":   "cpf",
	"email": "email",
	"id":    "id",
}

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y deja en la entidad el ID asignado.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, cpf, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		customer.Name, customer.CPF, nullIfEmpty(customer.Email), nullIfEmpty(customer.Phone),
	).Scan(&customer.ID)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `
		SELECT id, name, cpf, COALESCE(email, ''), COALESCE(phone, '')
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.CPF, &c.Email, &c.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ExistsByCPF indica si ya hay un cliente registrado con ese CPF.
func (r *CustomerRepo) ExistsByCPF(cpf string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM customers WHERE cpf = $1)`, cpf,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists customer by cpf: %w", err)
	}
	return exists, nil
}

// ExistsByEmail indica si ya hay un cliente registrado con ese email.
func (r *CustomerRepo) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists customer by email: %w", err)
	}
	return exists, nil
}

// List lista clientes con paginación y orden. sortBy se resuelve contra la
// lista blanca de columnas; jamás se interpola entrada del usuario.
func (r *CustomerRepo) List(limit, offset int, sortBy string, descending bool) ([]*entity.Customer, error) {
	column, ok := customerSortColumns[sortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if descending {
		direction = "DESC"
	}
	query := fmt.Sprintf(`
		SELECT id, name, cpf, COALESCE(email, ''), COALESCE(phone, '')
		FROM customers ORDER BY %s %s LIMIT $1 OFFSET $2`, column, direction)

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CPF, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve el total de clientes registrados.
func (r *CustomerRepo) Count() (int64, error) {
	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// Update actualiza nombre, cpf, email y teléfono de un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, cpf = $3, email = $4, phone = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.CPF, nullIfEmpty(customer.Email), nullIfEmpty(customer.Phone),
	)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// nullIfEmpty convierte "" en NULL para columnas opcionales con unicidad parcial.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

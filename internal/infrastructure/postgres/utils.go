package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/desafio/contas-api/internal/domain"
)

// uniqueViolation traduce una violación de constraint único (23505) al error
// de dominio correspondiente según el constraint afectado. El constraint de la
// base es la guardia autoritativa contra la carrera check-then-write de los
// casos de uso. Devuelve nil si el error no es una violación de unicidad.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "cpf"):
		return domain.ErrDuplicateCPF
	case strings.Contains(pgErr.ConstraintName, "email"):
		return domain.ErrDuplicateEmail
	default:
		return domain.ErrDuplicateCPF
	}
}

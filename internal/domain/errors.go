package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrDuplicateCPF   = errors.New("ya existe un cliente con este CPF")
	ErrDuplicateEmail = errors.New("ya existe un cliente con este email")
	ErrInvalidField   = errors.New("campo inválido")
)

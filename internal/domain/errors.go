package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidAmount    = errors.New("el monto debe ser mayor que cero")
	ErrDuplicate        = errors.New("recurso duplicado")
)

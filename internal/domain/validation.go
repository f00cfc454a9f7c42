package domain

import "fmt"

// ValidationError error de validación de formulario asociado a un campo
// concreto, para que la UI lo muestre junto al campo ofensor. Envuelve
// ErrInvalidInput: errors.Is(err, ErrInvalidInput) sigue funcionando.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

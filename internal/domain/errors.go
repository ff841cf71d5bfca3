package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrUserDisabled          = errors.New("usuario deshabilitado")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrMovementNotReversible = errors.New("un ajuste no es reversible")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
)

// ValidationError indica qué campo de la entrada es inválido.
// errors.Is(err, ErrInvalidInput) funciona vía Unwrap.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError para el campo indicado.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

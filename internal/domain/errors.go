package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrEmailNotVerified   = errors.New("email no verificado")
	ErrPaymentFailed      = errors.New("el pago no pudo procesarse")
	ErrEmailSendFailed    = errors.New("el correo no pudo enviarse")
)

// ValidationError identifica el campo exacto que bloquea la generación de una
// factura o un cobro. Se reporta como aviso transitorio, nunca como fatal.
type ValidationError struct {
	Field   string // ej: "client_email", "item_description"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Message)
}

// NewValidationError construye un error de validación para un campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation devuelve el *ValidationError si err lo es (directo o envuelto).
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

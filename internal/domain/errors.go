package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every field-level rule violation.
var ErrValidation = errors.New("validation error")

var (
	ErrBlankField       = fmt.Errorf("%w: el campo no puede estar vacío", ErrValidation)
	ErrNegativeCapacity = fmt.Errorf("%w: la capacidad no puede ser negativa", ErrValidation)
	ErrNegativePrice    = fmt.Errorf("%w: el precio no puede ser negativo", ErrValidation)
	ErrInvalidQuantity  = fmt.Errorf("%w: la cantidad de tickets a comprar debe ser mayor que 0", ErrValidation)
)

func fieldErr(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}

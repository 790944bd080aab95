package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// nonBlankPattern matches text holding at least one non-whitespace rune.
var nonBlankPattern = regexp2.MustCompile(`^(?=[\s\S]*\S)[\s\S]+$`, regexp2.None)

var (
	errBlank           = errors.New("no puede estar vacío")
	errInvalidQuantity = errors.New("La cantidad de tickets a comprar debe ser mayor que 0")
)

const (
	msgNegativePrice    = "El precio no puede ser negativo"
	msgNegativeCapacity = "La capacidad no puede ser negativa"
)

func notBlank(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errBlank
	}

	matched, err := nonBlankPattern.MatchString(s)
	if err != nil || !matched {
		return errBlank
	}

	return nil
}

func validQuantity(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	n, ok := v.(int)
	if !ok || n <= 0 {
		return errInvalidQuantity
	}

	return nil
}

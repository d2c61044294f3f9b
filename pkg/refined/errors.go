package refined

import "errors"

var (
	// ErrConstraintViolation is returned when a candidate fails its rule
	// and no handler supplied a more specific error
	ErrConstraintViolation = errors.New("refined: constraint violation")
	// ErrCoercionFailed is returned when a coercion handler produced a
	// substitute that fails the rule itself
	ErrCoercionFailed = errors.New("refined: coerced substitute is invalid")
)

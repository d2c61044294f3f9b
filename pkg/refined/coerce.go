package refined

import "fmt"

// CoerceFunc is invoked when a candidate fails its Rule. It may return a
// substitute value that satisfies the rule, which becomes the constructor
// result, or a non-nil error to abort the call.
type CoerceFunc[T any] func(T) (T, error)

// Coercer builds a refined Value from a raw candidate, repairing invalid
// input instead of rejecting it. An optional CoerceFunc overrides the
// factory's default handler for a single call.
type Coercer[T, B any] func(raw T, override ...CoerceFunc[T]) (Value[T, B], error)

// NewCoercer returns a Coercer that validates candidates with rule before
// wrapping them. On failure the (override or default) handler is asked for
// a substitute; the substitute is validated again, and one that still fails
// the rule yields ErrCoercionFailed. A nil handler reports
// ErrConstraintViolation.
func NewCoercer[T, B any](rule Rule[T], coerce CoerceFunc[T]) Coercer[T, B] {
	return func(raw T, override ...CoerceFunc[T]) (Value[T, B], error) {
		if rule == nil || rule(raw) {
			return Value[T, B]{value: raw}, nil
		}
		handler := coerce
		if len(override) > 0 && override[0] != nil {
			handler = override[0]
		}
		if handler == nil {
			return Value[T, B]{}, ErrConstraintViolation
		}
		substitute, err := handler(raw)
		if err != nil {
			return Value[T, B]{}, err
		}
		if !rule(substitute) {
			return Value[T, B]{}, fmt.Errorf("%w: substitute %v fails the rule", ErrCoercionFailed, substitute)
		}
		return Value[T, B]{value: substitute}, nil
	}
}

package refined

// Rule reports whether a candidate value satisfies a constraint. Rules must
// be pure: no side effects, same answer for the same input. A nil Rule
// accepts every candidate.
type Rule[T any] func(T) bool

// FailFunc is invoked when a candidate fails its Rule. It must return a
// non-nil error describing the violation; the constructor aborts with that
// error. A FailFunc that returns nil is treated as if it had returned
// ErrConstraintViolation, so a failed validation can never be swallowed.
type FailFunc[T any] func(T) error

// Value holds a value of type T that has passed its Rule. The brand
// parameter B is a phantom type: it never appears in the struct and costs
// nothing at runtime, but makes refinements of the same underlying type
// distinct Go types. Two packages can both refine string without their
// values being interchangeable:
//
//	type emailBrand struct{}
//	type Email = refined.Value[string, emailBrand]
//
//	NewEmail := refined.NewConstructor[string, emailBrand](isEmail, nil)
//
// The only way to obtain a non-zero Value is through a constructor, so
// holding one is proof the wrapped value satisfied the rule.
type Value[T, B any] struct {
	value T
}

// Unwrap returns the validated value.
func (v Value[T, B]) Unwrap() T {
	return v.value
}

// Constructor builds a refined Value from a raw candidate. An optional
// FailFunc overrides the factory's default handler for a single call.
type Constructor[T, B any] func(raw T, override ...FailFunc[T]) (Value[T, B], error)

// NewConstructor returns a Constructor that validates candidates with rule
// before wrapping them. On failure the override handler is invoked when one
// is supplied, otherwise fail; the constructor returns the zero Value and
// the handler's error. A nil fail reports ErrConstraintViolation.
func NewConstructor[T, B any](rule Rule[T], fail FailFunc[T]) Constructor[T, B] {
	return func(raw T, override ...FailFunc[T]) (Value[T, B], error) {
		if rule == nil || rule(raw) {
			return Value[T, B]{value: raw}, nil
		}
		handler := fail
		if len(override) > 0 && override[0] != nil {
			handler = override[0]
		}
		if handler == nil {
			return Value[T, B]{}, ErrConstraintViolation
		}
		err := handler(raw)
		if err == nil {
			err = ErrConstraintViolation
		}
		return Value[T, B]{}, err
	}
}

// Must unwraps a constructor result, panicking on error. Use only for
// inputs known to be valid, such as compile-time constants:
//
//	admin := refined.Must(NewEmail("admin@example.com"))
func Must[T, B any](v Value[T, B], err error) Value[T, B] {
	if err != nil {
		panic(err)
	}
	return v
}

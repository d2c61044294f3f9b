// Package refined provides factories for building validated, nominally
// branded wrapper types on top of plain Go values.
//
// The package moves a runtime validity check ("is this string a UUID?")
// into a one-time construction step. A Value[T, B] can only be obtained by
// passing its Rule, so every function that accepts one gets the validity
// guarantee for free and never re-checks.
//
// # Architecture
//
// A factory closes over a Rule (pure pass/fail predicate) and a default
// error handler, and returns a constructor function. Constructors accept a
// per-call handler override, so callers fully control how a violation is
// presented without the package hard-coding any error type. The brand
// parameter B is a phantom type with zero runtime footprint; its only job
// is to make two refinements of the same underlying type distinct,
// non-interchangeable Go types.
//
// The package ships no validation rules of its own. Rules are supplied by
// the caller, typically as small closures over the stdlib or a validation
// library.
//
// # Usage
//
//	type portBrand struct{}
//	type Port = refined.Value[int, portBrand]
//
//	NewPort := refined.NewConstructor[int, portBrand](
//		func(p int) bool { return p > 0 && p < 65536 },
//		func(p int) error { return fmt.Errorf("port %d out of range", p) },
//	)
//
//	p, err := NewPort(8080)        // ok, p.Unwrap() == 8080
//	_, err = NewPort(-1)           // err from the default handler
//	_, err = NewPort(-1, override) // err from the override instead
//
// NewCoercer builds a repairing variant whose handler may return a
// substitute value instead of an error:
//
//	ClampPort := refined.NewCoercer[int, portBrand](
//		inRange,
//		func(p int) (int, error) { return min(max(p, 1), 65535), nil },
//	)
//
// # Error Handling
//
// Failures surface as ordinary error returns. When no handler supplies an
// error, the sentinel ErrConstraintViolation is returned; a coercion
// handler whose substitute is itself invalid yields ErrCoercionFailed.
// Both work with errors.Is. The Must helper converts an error into a panic
// for statically known-good inputs.
//
// # Performance Considerations
//
// Construction is a single predicate call plus a struct literal; the
// wrapper adds no indirection and no allocation beyond the value itself.
// The package holds no state and is safe for concurrent use.
package refined

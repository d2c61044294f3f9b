package valueobject

import "errors"

var (
	// ErrZeroIdentity is returned when an entity is constructed with the
	// zero value of its identity type
	ErrZeroIdentity = errors.New("valueobject: entity identity must not be zero")
)

package valueobject

import "github.com/google/uuid"

// Entity wraps a value together with the identity that distinguishes it,
// for representing records with a primary key. Unlike Value, entities
// compare by identity: two entities with the same ID are the same record
// even when their values differ.
type Entity[ID comparable, T any] struct {
	id    ID
	value T
}

// NewEntity wraps value under the given identity. A zero identity is
// rejected with ErrZeroIdentity, since it cannot distinguish anything.
func NewEntity[ID comparable, T any](id ID, value T) (Entity[ID, T], error) {
	var zero ID
	if id == zero {
		return Entity[ID, T]{}, ErrZeroIdentity
	}
	return Entity[ID, T]{id: id, value: value}, nil
}

// NewIdentified wraps value under a freshly generated UUID identity, for
// records whose primary key is minted at construction.
func NewIdentified[T any](value T) Entity[uuid.UUID, T] {
	return Entity[uuid.UUID, T]{id: uuid.New(), value: value}
}

// ID returns the entity's identity.
func (e Entity[ID, T]) ID() ID {
	return e.id
}

// Unwrap returns the wrapped value.
func (e Entity[ID, T]) Unwrap() T {
	return e.value
}

// SameIdentityAs reports whether other refers to the same record.
func (e Entity[ID, T]) SameIdentityAs(other Entity[ID, T]) bool {
	return e.id == other.id
}

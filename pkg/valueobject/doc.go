// Package valueobject provides small immutable wrapper types: Value, which
// gives a raw value identity-by-value semantics, and Entity, which pairs a
// value with the identity that distinguishes it.
//
// Value objects compare by their attributes via Equals; entities compare by
// identity via SameIdentityAs, regardless of their values. NewIdentified
// mints a UUID primary key at construction for records that need one.
//
//	price := valueobject.New(999)
//	user, err := valueobject.NewEntity("usr_123", profile)
//	order := valueobject.NewIdentified(lineItems) // order.ID() is a fresh UUID
//
// All wrappers are immutable and safe for concurrent use.
package valueobject

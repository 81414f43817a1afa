package dynord

// Eq is the capability for comparing dynamically-typed values for
// equality.
//
// Values of different underlying concrete types are never equal.
// Values of the same underlying concrete type are compared with that
// type's own equality.
//
// An implementation's Equal must downcast the other operand to the
// implementation's own concrete type via Unwrap; the failed type
// assertion is the "not equal" outcome. Because both operands follow
// the same rule, Equal agrees no matter which operand it is invoked
// on.
type Eq interface {
	// Unwrap returns the underlying value. A type assertion on the
	// result is both the identity check and the downcast.
	Unwrap() any

	// Equal reports whether other holds a value of the same concrete
	// type that compares equal to this one.
	Equal(other Eq) bool
}

// Ord is the capability for ordering dynamically-typed values. Every
// Ord is also an Eq, and the two must agree: Compare yields Equal
// exactly when Equal reports true, and an incomparable pair is never
// equal.
//
// Values of different underlying concrete types are incomparable.
// Values of the same underlying concrete type are ordered by that
// type's own partial order, with the receiver as the left operand.
type Ord interface {
	Eq

	// Compare orders this value against other. ok is false when the
	// two values are incomparable.
	Compare(other Ord) (ord Ordering, ok bool)
}

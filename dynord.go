// Package dynord compares values whose concrete types are hidden
// behind a common interface.
//
// Two values held only as Eq (or Ord) can be compared without either
// call site knowing what they really are. Comparing triggers a
// runtime type-identity check: values of the same underlying concrete
// type are handed to that type's own comparison, and values of
// different types are simply not equal (for Eq) or incomparable (for
// Ord). A type mismatch is a defined outcome, never an error.
package dynord

/*
Equals compares two dynamically-typed values for equality.
Returns false when the values' concrete types differ, without
inspecting either value further.
*/
func Equals(a, b Eq) bool {
	return a.Equal(b)
}

/*
Compare orders two dynamically-typed values.
Returns ok=false when the values' concrete types differ, or when the
underlying partial order leaves the pair unordered.
*/
func Compare(a, b Ord) (Ordering, bool) {
	return a.Compare(b)
}

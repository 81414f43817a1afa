package dynord

import "cmp"

/*
EqOf wraps a value so it can be compared for equality against any
other wrapped value.
The identity used for dispatch is T itself, not the wrapper, so a
value wrapped with EqOf compares against the same value wrapped with
OrdOf.
*/
func EqOf[T comparable](v T) Eq {
	return eqValue[T]{v: v}
}

/*
OrdOf wraps a value so it can be compared and ordered against any
other wrapped value.
The ordering is the partial order of T's native operators: for
floating-point values, comparisons involving NaN are incomparable,
and NaN is not equal to itself.
*/
func OrdOf[T cmp.Ordered](v T) Ord {
	return ordValue[T]{v: v}
}

/*
EqFunc wraps a value of a type without a native ==, using eq as that
type's equality.
T must be a concrete type, and all values of T should be wrapped with
the same function.
*/
func EqFunc[T any](v T, eq func(a, b T) bool) Eq {
	return eqFuncValue[T]{v: v, eq: eq}
}

/*
OrdFunc wraps a value of an arbitrary type, using compare as that
type's three-way ordering: negative for a before b, zero for equal,
positive for a after b.
T must be a concrete type, and all values of T should be wrapped with
the same function.
*/
func OrdFunc[T any](v T, compare func(a, b T) int) Ord {
	return ordFuncValue[T]{v: v, compare: compare}
}

// orderOf is the partial order of T's native operators. The fallthrough
// case is reached only when a or b is NaN.
func orderOf[T cmp.Ordered](a, b T) (Ordering, bool) {
	switch {
	case a < b:
		return Less, true
	case a > b:
		return Greater, true
	case a == b:
		return Equal, true
	}
	return 0, false
}

type eqValue[T comparable] struct {
	v T
}

func (a eqValue[T]) Unwrap() any { return a.v }

func (a eqValue[T]) Equal(other Eq) bool {
	b, ok := other.Unwrap().(T)
	return ok && a.v == b
}

type ordValue[T cmp.Ordered] struct {
	v T
}

func (a ordValue[T]) Unwrap() any { return a.v }

// Equal is derived from the ordering so that equality and
// comparability cannot disagree.
func (a ordValue[T]) Equal(other Eq) bool {
	ord, ok := a.order(other.Unwrap())
	return ok && ord == Equal
}

func (a ordValue[T]) Compare(other Ord) (Ordering, bool) {
	return a.order(other.Unwrap())
}

// order downcasts and delegates with the receiver on the left.
func (a ordValue[T]) order(u any) (Ordering, bool) {
	b, ok := u.(T)
	if !ok {
		return 0, false
	}
	return orderOf(a.v, b)
}

type eqFuncValue[T any] struct {
	v  T
	eq func(a, b T) bool
}

func (a eqFuncValue[T]) Unwrap() any { return a.v }

func (a eqFuncValue[T]) Equal(other Eq) bool {
	b, ok := other.Unwrap().(T)
	return ok && a.eq(a.v, b)
}

type ordFuncValue[T any] struct {
	v       T
	compare func(a, b T) int
}

func (a ordFuncValue[T]) Unwrap() any { return a.v }

func (a ordFuncValue[T]) Equal(other Eq) bool {
	ord, ok := a.order(other.Unwrap())
	return ok && ord == Equal
}

func (a ordFuncValue[T]) Compare(other Ord) (Ordering, bool) {
	return a.order(other.Unwrap())
}

func (a ordFuncValue[T]) order(u any) (Ordering, bool) {
	b, ok := u.(T)
	if !ok {
		return 0, false
	}
	return orderingOf(a.compare(a.v, b)), true
}

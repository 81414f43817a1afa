package dynord

import (
	"cmp"
	"reflect"

	"github.com/dynord/go-dynord/internal/rtti"
)

// comparators is the dispatch table registered for one concrete type.
// order is nil for types registered with equality only.
type comparators struct {
	equal func(left, right any) bool
	order func(left, right any) (Ordering, bool)
}

/*
Registry dispatches equality and ordering over plain interface values
by their exact concrete type, without requiring the values to carry
the Eq or Ord capability themselves.
Registration associates a comparator table with a reflect.Type; Unify
and Order consult it after the identity check.
*/
type Registry struct {
	types map[reflect.Type]comparators
}

/*
NewRegistry returns a Registry with the builtin scalar types
pre-registered: bool, string, every signed and unsigned integer size,
and both float sizes.
*/
func NewRegistry() *Registry {
	r := &Registry{types: make(map[reflect.Type]comparators)}
	registerBuiltins(r)
	return r
}

func registerBuiltins(r *Registry) {
	// A fresh registry has no entries, so none of these can collide.
	_ = Register[bool](r)
	_ = RegisterOrdered[string](r)
	_ = RegisterOrdered[int](r)
	_ = RegisterOrdered[int8](r)
	_ = RegisterOrdered[int16](r)
	_ = RegisterOrdered[int32](r)
	_ = RegisterOrdered[int64](r)
	_ = RegisterOrdered[uint](r)
	_ = RegisterOrdered[uint8](r)
	_ = RegisterOrdered[uint16](r)
	_ = RegisterOrdered[uint32](r)
	_ = RegisterOrdered[uint64](r)
	_ = RegisterOrdered[float32](r)
	_ = RegisterOrdered[float64](r)
}

func (r *Registry) register(t reflect.Type, c comparators) error {
	if _, ok := r.types[t]; ok {
		return NewDuplicateTypeRegistrationError(t)
	}
	r.types[t] = c
	return nil
}

/*
Register adds equality dispatch for T using T's native ==.
Returns an error if T is already registered.
*/
func Register[T comparable](r *Registry) error {
	return r.register(rtti.TypeFor[T](), comparators{
		equal: func(left, right any) bool {
			return left.(T) == right.(T)
		},
	})
}

/*
RegisterOrdered adds equality and ordering dispatch for T using T's
native operators. NaN float values are incomparable.
Returns an error if T is already registered.
*/
func RegisterOrdered[T cmp.Ordered](r *Registry) error {
	return r.register(rtti.TypeFor[T](), comparators{
		order: func(left, right any) (Ordering, bool) {
			return orderOf(left.(T), right.(T))
		},
	})
}

/*
RegisterEqualFunc adds equality dispatch for T using eq.
Returns an error if T is already registered.
*/
func RegisterEqualFunc[T any](r *Registry, eq func(a, b T) bool) error {
	return r.register(rtti.TypeFor[T](), comparators{
		equal: func(left, right any) bool {
			return eq(left.(T), right.(T))
		},
	})
}

/*
RegisterCompareFunc adds equality and ordering dispatch for T using
compare as a three-way ordering: negative for a before b, zero for
equal, positive for a after b.
Returns an error if T is already registered.
*/
func RegisterCompareFunc[T any](r *Registry, compare func(a, b T) int) error {
	return r.register(rtti.TypeFor[T](), comparators{
		order: func(left, right any) (Ordering, bool) {
			return orderingOf(compare(left.(T), right.(T))), true
		},
	})
}

/*
Unify compares two values of any type for equality.
Values of different concrete types never unify. Values of the same
concrete type are compared with the comparator registered for that
type if there is one, then with their own Eq implementation, and
finally with reflect.DeepEqual.
*/
func (r *Registry) Unify(left, right any) bool {
	if !rtti.SameType(left, right) {
		return false
	}
	if c, ok := r.types[reflect.TypeOf(left)]; ok {
		if c.order != nil {
			// Equality is derived from the ordering so the two
			// answers cannot drift apart.
			ord, ok := c.order(left, right)
			return ok && ord == Equal
		}
		return c.equal(left, right)
	}
	if leftEq, ok := left.(Eq); ok {
		if rightEq, ok := right.(Eq); ok {
			return leftEq.Equal(rightEq)
		}
	}
	return reflect.DeepEqual(left, right)
}

/*
Order orders two values of any type.
Values of different concrete types are incomparable. Values of the
same concrete type are ordered with the comparator registered for
that type if there is one, then with their own Ord implementation;
a type with neither is incomparable.
*/
func (r *Registry) Order(left, right any) (Ordering, bool) {
	if !rtti.SameType(left, right) {
		return 0, false
	}
	if c, ok := r.types[reflect.TypeOf(left)]; ok {
		if c.order == nil {
			return 0, false
		}
		return c.order(left, right)
	}
	if leftOrd, ok := left.(Ord); ok {
		if rightOrd, ok := right.(Ord); ok {
			return leftOrd.Compare(rightOrd)
		}
	}
	return 0, false
}

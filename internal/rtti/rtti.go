package rtti

import "reflect"

// Type identity is exact matching. We will not check whether Go
// would permit a conversion between types or whether a named type
// "matches" its underlying type. This is because doing so has the
// side-effect of allowing runtime type confusion between types of
// identical schemas.
func SameType(left, right any) bool {
	return reflect.TypeOf(left) == reflect.TypeOf(right)
}

// TypeFor returns the reflect.Type of T without needing a value of T.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

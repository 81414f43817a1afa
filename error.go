package dynord

import (
	"fmt"
	"reflect"
)

type DuplicateTypeRegistrationError struct {
	typ reflect.Type
}

func NewDuplicateTypeRegistrationError(typ reflect.Type) error {
	return &DuplicateTypeRegistrationError{typ: typ}
}

func (e *DuplicateTypeRegistrationError) Error() string {
	return fmt.Sprintf("Attempted to register %v, but that type is already registered.", e.typ)
}

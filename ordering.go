package dynord

import "fmt"

// Ordering is the result of comparing two values of the same
// concrete type.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// orderingOf converts a conventional three-way comparison result
// (negative, zero, positive) to an Ordering.
func orderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}

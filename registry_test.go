package dynord_test

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dynord "github.com/dynord/go-dynord"
)

func TestRegistryUnifyBuiltins(t *testing.T) {
	r := dynord.NewRegistry()

	assert.True(t, r.Unify(42, 42))
	assert.False(t, r.Unify(42, 43))
	assert.True(t, r.Unify("qux", "qux"))
	assert.False(t, r.Unify("qux", "baz"))
	assert.True(t, r.Unify(true, true))
	assert.False(t, r.Unify(true, false))

	// Identity is exact: an int never unifies with an int64, whatever
	// the values.
	assert.False(t, r.Unify(42, int64(42)))
	assert.False(t, r.Unify(42, "qux"))
	assert.False(t, r.Unify(1.0, 1))
}

func TestRegistryOrderBuiltins(t *testing.T) {
	r := dynord.NewRegistry()

	ord, ok := r.Order("qux", "baz")
	require.True(t, ok)
	assert.Equal(t, dynord.Greater, ord)

	ord, ok = r.Order("baz", "qux")
	require.True(t, ok)
	assert.Equal(t, dynord.Less, ord)

	ord, ok = r.Order(41, 42)
	require.True(t, ok)
	assert.Equal(t, dynord.Less, ord)

	_, ok = r.Order(42, "qux")
	assert.False(t, ok, "cross-type values should be incomparable")

	// bool is registered for equality only.
	_, ok = r.Order(true, false)
	assert.False(t, ok)
	assert.True(t, r.Unify(false, false))
}

func TestRegistryCustomType(t *testing.T) {
	r := dynord.NewRegistry()

	require.NoError(t, dynord.RegisterCompareFunc(r, func(a, b Version) int {
		if a.Major != b.Major {
			return a.Major - b.Major
		}
		return a.Minor - b.Minor
	}))

	assert.True(t, r.Unify(Version{1, 2}, Version{1, 2}))
	assert.False(t, r.Unify(Version{1, 2}, Version{1, 3}))

	ord, ok := r.Order(Version{1, 2}, Version{2, 0})
	require.True(t, ok)
	assert.Equal(t, dynord.Less, ord)

	ord, ok = r.Order(Version{2, 0}, Version{1, 2})
	require.True(t, ok)
	assert.Equal(t, dynord.Greater, ord)
}

func TestRegistryEqualFunc(t *testing.T) {
	r := dynord.NewRegistry()

	require.NoError(t, dynord.RegisterEqualFunc(r, func(a, b net.IP) bool {
		return a.Equal(b)
	}))

	assert.True(t, r.Unify(net.ParseIP("127.0.0.1"), net.ParseIP("127.0.0.1")))
	assert.False(t, r.Unify(net.ParseIP("127.0.0.1"), net.ParseIP("10.0.0.1")))

	// Equality-only registration leaves the type unordered.
	_, ok := r.Order(net.ParseIP("10.0.0.1"), net.ParseIP("10.0.0.2"))
	assert.False(t, ok)
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	r := dynord.NewRegistry()

	err := dynord.RegisterOrdered[string](r)
	require.Error(t, err)

	var dup *dynord.DuplicateTypeRegistrationError
	require.True(t, errors.As(err, &dup))
	assert.Contains(t, err.Error(), "already registered")

	require.NoError(t, dynord.Register[Version](r))
	err = dynord.RegisterCompareFunc(r, func(a, b Version) int { return 0 })
	require.Error(t, err)
}

func TestRegistryCapabilityFallback(t *testing.T) {
	r := dynord.NewRegistry()

	// Unregistered types that carry their own capability are compared
	// through it.
	assert.True(t, r.Unify(ImplementsEq{Val: 5}, ImplementsEq{Val: 5}))
	assert.False(t, r.Unify(ImplementsEq{Val: 5}, ImplementsEq{Val: 6}))

	ord, ok := r.Order(Version{1, 0}, Version{1, 5})
	require.True(t, ok)
	assert.Equal(t, dynord.Less, ord)
}

func TestRegistryDeepEqualFallback(t *testing.T) {
	type pair struct{ A, B []int }

	r := dynord.NewRegistry()

	assert.True(t, r.Unify(pair{A: []int{1}}, pair{A: []int{1}}))
	assert.False(t, r.Unify(pair{A: []int{1}}, pair{A: []int{2}}))

	// No registration and no Ord capability means no ordering.
	_, ok := r.Order(pair{}, pair{})
	assert.False(t, ok)
}

func TestRegistryNil(t *testing.T) {
	r := dynord.NewRegistry()

	assert.True(t, r.Unify(nil, nil))
	assert.False(t, r.Unify(nil, 42))
	assert.False(t, r.Unify("qux", nil))

	_, ok := r.Order(nil, nil)
	assert.False(t, ok)
	_, ok = r.Order(nil, 42)
	assert.False(t, ok)
}

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/stretchr/testify/assert"
)

// TestDistance_ZeroValueIsInfinite guards the map-lookup contract: a vertex
// an algorithm never touched must read back as unreachable.
func TestDistance_ZeroValueIsInfinite(t *testing.T) {
	var d core.Distance
	assert.True(t, d.IsInfinite())

	dist := map[string]core.Distance{}
	assert.True(t, dist["never-touched"].IsInfinite())
}

// TestDistance_FiniteAccessors checks NewDistance/Value round-trips.
func TestDistance_FiniteAccessors(t *testing.T) {
	d := core.NewDistance(42)
	assert.False(t, d.IsInfinite())

	v, ok := d.Value()
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	_, ok = core.Infinite().Value()
	assert.False(t, ok)
}

// TestDistance_AddAbsorbsInfinity is the overflow guard: infinity plus any
// weight must stay infinity, never wrap into a finite value.
func TestDistance_AddAbsorbsInfinity(t *testing.T) {
	assert.True(t, core.Infinite().Add(1).IsInfinite())
	assert.True(t, core.Infinite().Add(-1).IsInfinite())

	v, ok := core.NewDistance(3).Add(4).Value()
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)
}

// TestDistance_Ordering checks Less across the finite/infinite boundary.
func TestDistance_Ordering(t *testing.T) {
	fin := core.NewDistance(10)
	inf := core.Infinite()

	assert.True(t, fin.Less(inf), "finite < infinite")
	assert.False(t, inf.Less(fin), "infinite never improves")
	assert.False(t, inf.Less(inf), "infinite not less than itself")
	assert.True(t, core.NewDistance(9).Less(fin))
	assert.False(t, fin.Less(fin), "strict ordering only")
}

// TestDistance_EqualAndNegative covers the remaining predicates.
func TestDistance_EqualAndNegative(t *testing.T) {
	assert.True(t, core.NewDistance(5).Equal(core.NewDistance(5)))
	assert.False(t, core.NewDistance(5).Equal(core.Infinite()))
	assert.True(t, core.Infinite().Equal(core.Infinite()))

	assert.True(t, core.NewDistance(-1).Negative())
	assert.False(t, core.NewDistance(0).Negative())
	assert.False(t, core.Infinite().Negative())
}

// TestDistance_String renders both variants.
func TestDistance_String(t *testing.T) {
	assert.Equal(t, "+Inf", core.Infinite().String())
	assert.Equal(t, "-7", core.NewDistance(-7).String())
	assert.Equal(t, "0", core.NewDistance(0).String())
}

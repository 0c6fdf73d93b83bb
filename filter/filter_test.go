package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlwaysNever(t *testing.T) {
	cond := NewCondition("cond", func() bool { return true })

	assert.Same(t, cond, Always.And(cond), "Always & x == x")
	assert.Same(t, Never, Never.And(cond), "Never & x == Never")
	assert.Same(t, Always, Always.Or(cond), "Always | x == Always")
	assert.Same(t, cond, Never.Or(cond), "Never | x == x")
	assert.Same(t, Never, Always.Invert(), "~Always == Never")
	assert.Same(t, Always, Never.Invert(), "~Never == Always")
}

func TestShortCircuit(t *testing.T) {
	t.Run("and stops at first false", func(t *testing.T) {
		calledSecond := false
		f := NewCondition("false", func() bool { return false })
		g := NewCondition("track", func() bool { calledSecond = true; return true })

		assert.False(t, f.And(g).Invoke())
		assert.False(t, calledSecond, "second operand must not be evaluated")
	})

	t.Run("or stops at first true", func(t *testing.T) {
		calledSecond := false
		f := NewCondition("true", func() bool { return true })
		g := NewCondition("track", func() bool { calledSecond = true; return false })

		assert.True(t, f.Or(g).Invoke())
		assert.False(t, calledSecond, "second operand must not be evaluated")
	})
}

func TestAndOrInvoke(t *testing.T) {
	truthTable := []struct {
		a, b     bool
		wantAnd  bool
		wantOr   bool
	}{
		{true, true, true, true},
		{true, false, false, true},
		{false, true, false, true},
		{false, false, false, false},
	}

	for _, row := range truthTable {
		a := NewCondition("a", func() bool { return row.a })
		b := NewCondition("b", func() bool { return row.b })
		assert.Equal(t, row.wantAnd, a.And(b).Invoke())
		assert.Equal(t, row.wantOr, a.Or(b).Invoke())
	}

	g := NewCondition("g", func() bool { return false })
	assert.True(t, g.Invert().Invoke())
}

func TestMemoization(t *testing.T) {
	f := NewCondition("f", func() bool { return true })
	g := NewCondition("g", func() bool { return false })

	assert.Same(t, f.And(g), f.And(g), "And must be memoized by identity of other")
	assert.Same(t, f.Or(g), f.Or(g), "Or must be memoized by identity of other")
	assert.Same(t, f.Invert(), f.Invert(), "Invert must be cached")
}

func TestAndListFlattenDedupe(t *testing.T) {
	a := NewCondition("a", func() bool { return true })
	b := NewCondition("b", func() bool { return true })
	c := NewCondition("c", func() bool { return true })

	nested := CreateAndList(a, b)
	combined := CreateAndList(nested, c, a) // a repeated -- must dedupe

	al, ok := combined.(*AndList)
	if !assert.True(t, ok, "expected a fresh *AndList") {
		return
	}
	assert.Equal(t, []Filter{a, b, c}, al.filters, "first-occurrence order preserved, duplicates removed")
}

func TestAndListCollapse(t *testing.T) {
	a := NewCondition("a", func() bool { return true })
	assert.Same(t, a, CreateAndList(a), "single-filter AndList collapses to that filter")
	assert.Same(t, Always, CreateAndList(), "empty AndList collapses to Always")
	assert.Same(t, Never, CreateAndList(a, Never), "AndList containing Never collapses to Never")
}

func TestOrListCollapse(t *testing.T) {
	a := NewCondition("a", func() bool { return true })
	assert.Same(t, a, CreateOrList(a), "single-filter OrList collapses to that filter")
	assert.Same(t, Never, CreateOrList(), "empty OrList collapses to Never")
	assert.Same(t, Always, CreateOrList(a, Always), "OrList containing Always collapses to Always")
}

func TestOrBool(t *testing.T) {
	assert.True(t, IsTrue(Bool(true)))
	assert.False(t, IsTrue(Bool(false)))

	f := NewCondition("f", func() bool { return true })
	assert.True(t, IsTrue(Ref(f)))
}

// Package filter implements the boolean expression algebra used throughout
// ptk to gate keybindings, control visibility, and drive conditional
// behavior. A Filter is evaluated lazily with Invoke and
// combined with And/Or/Invert; the combinators are memoized per instance,
// the same way peco's filter.Set caches compiled state per query
// (filter.regexpQueryFactory) rather than recomputing it on every call.
package filter

import (
	"sync"

	"github.com/pkg/errors"
)

// Filter evaluates to true or false. Invoke may be called repeatedly and
// may return different results across calls (it is allowed to read
// ambient, mutable state such as the application's editing mode).
type Filter interface {
	Invoke() bool

	// And returns a Filter equivalent to (f && other). Memoized per
	// instance by the identity of other.
	And(other Filter) Filter

	// Or returns a Filter equivalent to (f || other). Memoized per
	// instance by the identity of other.
	Or(other Filter) Filter

	// Invert returns a Filter equivalent to (!f). Cached after first call.
	Invert() Filter

	// Name returns a human readable label, used in debug tracing and
	// error messages. Not required to be unique.
	Name() string
}

// combinatorCache guards the lazily constructed And/Or/Invert results for
// one Filter instance, keyed by the identity of the other operand.
type combinatorCache struct {
	mutex   sync.Mutex
	andOf   map[Filter]Filter
	orOf    map[Filter]Filter
	inverse Filter
}

func (c *combinatorCache) and(self Filter, other Filter) Filter {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.andOf == nil {
		c.andOf = make(map[Filter]Filter)
	}
	if f, ok := c.andOf[other]; ok {
		return f
	}
	f := newAndList(self, other)
	c.andOf[other] = f
	return f
}

func (c *combinatorCache) or(self Filter, other Filter) Filter {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.orOf == nil {
		c.orOf = make(map[Filter]Filter)
	}
	if f, ok := c.orOf[other]; ok {
		return f
	}
	f := newOrList(self, other)
	c.orOf[other] = f
	return f
}

func (c *combinatorCache) invert(self Filter) Filter {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.inverse != nil {
		return c.inverse
	}
	c.inverse = newInvert(self)
	return c.inverse
}

type always struct{ combinatorCache }
type never struct{ combinatorCache }

// Always is the Filter that always evaluates to true. Always & x == x,
// Always | x == Always, ~Always == Never.
var Always Filter = &always{}

// Never is the Filter that always evaluates to false. Never & x == Never,
// Never | x == x, ~Never == Always.
var Never Filter = &never{}

func (a *always) Invoke() bool        { return true }
func (a *always) Name() string        { return "Always" }
func (a *always) And(o Filter) Filter { return o }
func (a *always) Or(o Filter) Filter  { return Always }
func (a *always) Invert() Filter      { return Never }

func (n *never) Invoke() bool        { return false }
func (n *never) Name() string        { return "Never" }
func (n *never) And(o Filter) Filter { return Never }
func (n *never) Or(o Filter) Filter  { return o }
func (n *never) Invert() Filter      { return Always }

// Condition wraps an arbitrary predicate as a Filter. Filter
// evaluation errors (panics from fn) propagate unchanged -- a broken filter
// is a programmer error, never swallowed here.
type Condition struct {
	combinatorCache
	name string
	fn   func() bool
}

// NewCondition creates a Filter backed by fn.
func NewCondition(name string, fn func() bool) *Condition {
	if fn == nil {
		panic(errors.New("filter: NewCondition requires a non-nil fn"))
	}
	return &Condition{name: name, fn: fn}
}

func (c *Condition) Invoke() bool { return c.fn() }
func (c *Condition) Name() string { return c.name }
func (c *Condition) And(o Filter) Filter {
	if o == Always {
		return c
	}
	if o == Never {
		return Never
	}
	return c.combinatorCache.and(c, o)
}
func (c *Condition) Or(o Filter) Filter {
	if o == Always {
		return Always
	}
	if o == Never {
		return c
	}
	return c.combinatorCache.or(c, o)
}
func (c *Condition) Invert() Filter { return c.combinatorCache.invert(c) }

type invertFilter struct {
	combinatorCache
	inner Filter
}

func newInvert(inner Filter) Filter {
	return &invertFilter{inner: inner}
}

func (i *invertFilter) Invoke() bool { return !i.inner.Invoke() }
func (i *invertFilter) Name() string { return "~" + i.inner.Name() }
func (i *invertFilter) And(o Filter) Filter {
	if o == Always {
		return i
	}
	if o == Never {
		return Never
	}
	return i.combinatorCache.and(i, o)
}
func (i *invertFilter) Or(o Filter) Filter {
	if o == Always {
		return Always
	}
	if o == Never {
		return i
	}
	return i.combinatorCache.or(i, o)
}
func (i *invertFilter) Invert() Filter { return i.inner }

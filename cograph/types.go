// File: types.go
// Role: The co-inductive counterpart of core.LazyGraph, with a
// memoized thunk standing in for the infinite computation a Build∞
// node's children would otherwise require.
package cograph

import "github.com/katalvlaran/mrsc/core"

// InfKind tags the three variants of LazyGraphInf[C].
type InfKind uint8

const (
	// EmptyInfKind denotes the empty set, the same way EmptyLazyKind
	// does for core.LazyGraph. BuildCograph never produces it directly;
	// it only appears after a cleaner (CleanBadConfInf) introduces one.
	EmptyInfKind InfKind = iota
	// StopInfKind denotes a folded leaf: {Back(c)}.
	StopInfKind
	// BuildInfKind denotes a node whose children are computed on
	// demand by forcing Lss.
	BuildInfKind
)

// thunk is a write-once memo cell: Force runs compute the first time
// and caches the result, then returns the cached value on every later
// call. compute is cleared after the first force so the closure (and
// everything it captured) can be collected.
type thunk[C any] struct {
	compute func() [][]LazyGraphInf[C]
	done    bool
	cached  [][]LazyGraphInf[C]
}

func (t *thunk[C]) force() [][]LazyGraphInf[C] {
	if !t.done {
		t.cached = t.compute()
		t.compute = nil
		t.done = true
	}
	return t.cached
}

// LazyGraphInf is the infinite analogue of core.LazyGraph[C]: Build∞'s
// alternatives are not stored directly but produced, and remembered,
// by a thunk the first time something forces this node.
type LazyGraphInf[C any] struct {
	Kind InfKind
	Conf C // meaningful when Kind != EmptyInfKind
	lss  *thunk[C]
}

// EmptyGraphInf constructs the Empty∞ co-graph.
func EmptyGraphInf[C any]() LazyGraphInf[C] {
	return LazyGraphInf[C]{Kind: EmptyInfKind}
}

// StopInf constructs the Stop∞(c) co-graph.
func StopInf[C any](c C) LazyGraphInf[C] {
	return LazyGraphInf[C]{Kind: StopInfKind, Conf: c}
}

// BuildInf constructs a Build∞(c, ·) co-graph whose alternatives are
// produced by compute the first time Force is called. compute must be
// a pure function of c (and whatever history it closed over) — it may
// be called zero or one times, never more.
func BuildInf[C any](c C, compute func() [][]LazyGraphInf[C]) LazyGraphInf[C] {
	return LazyGraphInf[C]{Kind: BuildInfKind, Conf: c, lss: &thunk[C]{compute: compute}}
}

// Force returns l's alternatives, computing and caching them on the
// first call. Force panics if l.Kind != BuildInfKind — callers must
// switch on Kind first, exactly as core.Graph/core.LazyGraph dispatch
// requires.
func (l LazyGraphInf[C]) Force() [][]LazyGraphInf[C] {
	if l.Kind != BuildInfKind {
		panic(core.ErrMalformedLazyGraph)
	}
	return l.lss.force()
}

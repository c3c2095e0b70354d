// Package cograph implements the infinite, co-inductive counterpart of
// core.LazyGraph: a representation of a supercompiler's unbounded
// search tree that builds a node's children only when something asks
// for them, and remembers the answer afterwards so a second ask is
// free.
//
// LazyGraphInf plays the same staging role LazyGraph does for
// engine.LazyMrsc, but BuildCograph never applies the whistle at
// construction time — a BuildInf node's child list is a thunk, forced
// at most once, in the spirit of lvlath/flow's Dinic building one BFS
// level graph at a time rather than the whole residual network up
// front. PruneCograph (and its optimized sibling Prune) is what turns
// an infinite LazyGraphInf into a finite core.LazyGraph by applying the
// whistle while walking down, the same way Dinic's blocking-flow phase
// consumes one level graph and discards it.
//
// Determinism:
//   - A thunk is forced at most once; the cached result is reused on
//     every subsequent force. This module never forces a thunk
//     concurrently with itself, so the memo cell is a plain mutable
//     field, not a sync.Once — matching core's "a single run is a
//     straight-line computation" stance.
package cograph

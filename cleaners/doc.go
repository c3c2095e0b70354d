// Package cleaners implements semantics-narrowing transformations on
// core.LazyGraph: CleanEmpty, CleanBadConf, CleanEmptyAndBad, and
// CleanMinSize.
//
// A cleaner is a total function LazyGraph[C] -> LazyGraph[C] such that
// unroll.Unroll(cleaner(l)) is a subset (in multiset-with-order terms,
// a filtering) of unroll.Unroll(l) — never more graphs, never a
// different graph than one that was already there. Cleaners compose by
// ordinary function composition; CleanEmptyAndBad is defined as exactly
// that composition.
//
// Grounding: CleanMinSize's "track the best candidate while walking,
// discard the rest" shape is the same shape as lvlath/dijkstra's
// relaxation step (keep the smallest distance seen so far, discard
// dominated candidates) — the size monoid's ∞-absorption mirrors the
// way lvlath/dtw represents an unreachable cell with math.Inf(1) and
// lets ordinary addition propagate it. CleanEmpty/CleanBadConf mirror
// lvlath/core's FilterEdges: a predicate over the tree decides what
// survives, and nothing else about the structure changes.
package cleaners

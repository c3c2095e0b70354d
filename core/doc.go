// Package core defines the value model shared by every other package in
// this module: the World interface that abstracts over an object
// language, the (finite) Graph of configurations a supercompiler can
// produce, and the LazyGraph staged representation of a whole set of
// such graphs.
//
// Nothing in this package performs search. core only defines the
// shapes that naive_mrsc, lazy_mrsc, the cleaners, and the co-graph
// variant all operate on — the way lvlath's own core package defines
// Graph/Vertex/Edge once and lets bfs/dfs/dijkstra/flow build on top.
//
// Determinism:
//   - Every type here is an immutable value tree. There is no mutation
//     after construction, no shared aliasing between two results, and
//     no locking — a single supercompilation run is a straight-line
//     recursive computation.
//
// Configuration identity:
//   - C is an opaque type parameter. core places no constraint on it
//     beyond what the World chooses to do with it: World.IsFoldableTo
//     decides subsumption, not structural equality. Graph/LazyGraph
//     values embed C by value; callers are responsible for C being
//     cheap to copy or for passing pointer-ish C values deliberately.
package core

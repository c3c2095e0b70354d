// File: types.go
// Role: The two value trees the whole module is built around — the
// finite residual Graph and the staged LazyGraph — plus the World
// contract that supplies object-language semantics.
//
// Determinism:
//   - Both trees are constructed bottom-up by pure functions and never
//     mutated afterwards; Children/Alts slices are owned by the value
//     that holds them and never shared across two distinct results.
package core

// GraphKind tags the two variants of Graph[C].
type GraphKind uint8

const (
	// BackKind marks a leaf: the configuration folds to some ancestor.
	// The ancestor itself is not stored — foldability is a property of
	// the traversal, not a pointer.
	BackKind GraphKind = iota
	// ForthKind marks an internal node: the configuration together with
	// one child graph per sub-configuration the world's development
	// step produced.
	ForthKind
)

// Graph is a finite residual tree over configurations of type C. It is
// the eager, fully-materialized output of naive_mrsc and of unrolling
// a LazyGraph.
//
// Invariant: a Forth node's Children is non-empty iff the world's
// development step for Conf produced a non-empty decomposition; a Back
// node was only ever constructed with a non-empty history in hand.
type Graph[C any] struct {
	Kind     GraphKind
	Conf     C
	Children []Graph[C] // meaningful only when Kind == ForthKind
}

// Back constructs a Back(c) leaf.
func Back[C any](c C) Graph[C] {
	return Graph[C]{Kind: BackKind, Conf: c}
}

// Forth constructs a Forth(c, children) node. children is stored as
// given — order is significant and is never re-sorted by this package.
func Forth[C any](c C, children []Graph[C]) Graph[C] {
	return Graph[C]{Kind: ForthKind, Conf: c, Children: children}
}

// LazyKind tags the three variants of LazyGraph[C].
type LazyKind uint8

const (
	// EmptyLazyKind denotes the empty set of graphs.
	EmptyLazyKind LazyKind = iota
	// StopLazyKind denotes the singleton set {Back(c)}.
	StopLazyKind
	// BuildLazyKind denotes a set built from alternatives of children.
	BuildLazyKind
)

// LazyGraph is a staged, finite representation of a *set* of Graph[C]
// values. It is interpreted by Unroll.
//
//   - Empty   — the empty set.
//   - Stop(c) — the singleton set {Back(c)}.
//   - Build(c, lss) — for each alternative ls in lss, the cartesian
//     product of the sets denoted by ls's elements, each wrapped under
//     Forth(c, ·); the alternatives are concatenated in order.
//
// lss ([Alts]) is an ordered sequence of ordered sequences of
// LazyGraph[C] — "alternatives of children lists" — and that order is
// part of the observable contract.
type LazyGraph[C any] struct {
	Kind LazyKind
	Conf C               // meaningful when Kind != EmptyLazyKind
	Alts [][]LazyGraph[C] // meaningful only when Kind == BuildLazyKind
}

// EmptyGraph constructs the Empty lazy graph. Named EmptyGraph (not
// Empty) to avoid shadowing the common "Empty" identifier found on
// nearly every container type in the surrounding ecosystem.
func EmptyGraph[C any]() LazyGraph[C] {
	return LazyGraph[C]{Kind: EmptyLazyKind}
}

// Stop constructs the Stop(c) lazy graph.
func Stop[C any](c C) LazyGraph[C] {
	return LazyGraph[C]{Kind: StopLazyKind, Conf: c}
}

// Build constructs the Build(c, lss) lazy graph.
func Build[C any](c C, lss [][]LazyGraph[C]) LazyGraph[C] {
	return LazyGraph[C]{Kind: BuildLazyKind, Conf: c, Alts: lss}
}

// World supplies everything the core needs to know about an object
// language to enumerate its residual graphs. The core never normalizes
// a configuration, never decides what "driving" or "generalization"
// means, and never invents a whistle — all three are entirely up to
// the implementer.
type World[C any] interface {
	// IsFoldableTo reports whether c1 is at least as specific as c2 and
	// may therefore fold to it. Not required to be symmetric; usually
	// reflexive.
	IsFoldableTo(c1, c2 C) bool

	// Develop enumerates every non-deterministic decomposition of c.
	// Each inner slice is one alternative development; an empty outer
	// slice means c has no development. Order is significant and is
	// preserved verbatim in the resulting Build/Forth nodes.
	Develop(c C) [][]C

	// IsDangerous is the whistle: a predicate on the history (most
	// recent configuration first) that forces termination of the
	// current branch. Monotone extension is expected but not enforced.
	IsDangerous(history []C) bool
}

// IsFoldableToHistory reports whether c folds to some configuration
// already present in history. It is the only derived predicate the
// core provides on top of World.
func IsFoldableToHistory[C any](w World[C], c C, history []C) bool {
	for _, ancestor := range history {
		if w.IsFoldableTo(c, ancestor) {
			return true
		}
	}
	return false
}

// Prepend returns a fresh history slice with c first followed by
// history, without mutating or aliasing history's backing array. Every
// recursive driver in this module (engine, cograph) uses this so that
// sibling branches of a development never see each other's history.
func Prepend[C any](c C, history []C) []C {
	next := make([]C, len(history)+1)
	next[0] = c
	copy(next[1:], history)
	return next
}

// File: minsize.go
// Role: cl_min_size — returns a lazy graph denoting the
// single smallest residual graph by node count, computed directly
// against the staged representation rather than by materializing and
// sorting.
package cleaners

import "github.com/katalvlaran/mrsc/core"

// Size is a node count with an absorbing infinity used for
// sub-trees that denote the empty set — the same role math.Inf(1)
// plays in lvlath/dtw's cost matrix.
type Size int

// Infinite stands for "no graph exists along this path". It absorbs
// under addition: Infinite + anything == Infinite.
const Infinite Size = -1

func addSize(a, b Size) Size {
	if a == Infinite || b == Infinite {
		return Infinite
	}
	return a + b
}

// CleanMinSize returns the lazy graph denoting {g} where g is the
// first (in unroll order) minimum-core.GraphSize graph in
// unroll.Unroll(l), or EmptyGraph if unroll.Unroll(l) is empty.
func CleanMinSize[C any](l core.LazyGraph[C]) core.LazyGraph[C] {
	_, cleaned := minSize(l)
	return cleaned
}

// minSize returns (size, cleaned) where size is the minimum
// core.GraphSize achievable by l (or Infinite if l denotes the empty
// set) and cleaned is the lazy graph for exactly that one graph.
func minSize[C any](l core.LazyGraph[C]) (Size, core.LazyGraph[C]) {
	switch l.Kind {
	case core.EmptyLazyKind:
		return Infinite, core.EmptyGraph[C]()
	case core.StopLazyKind:
		return 1, l
	case core.BuildLazyKind:
		bestSize := Infinite
		var bestAlt []core.LazyGraph[C]
		for _, alt := range l.Alts {
			total := Size(1) // this Forth node itself
			cleanedAlt := make([]core.LazyGraph[C], len(alt))
			for i, child := range alt {
				s, cc := minSize(child)
				cleanedAlt[i] = cc
				total = addSize(total, s)
			}
			if total == Infinite {
				continue
			}
			if bestSize == Infinite || total < bestSize {
				bestSize = total
				bestAlt = cleanedAlt
			}
		}
		if bestSize == Infinite {
			return Infinite, core.EmptyGraph[C]()
		}
		return bestSize, core.Build(l.Conf, [][]core.LazyGraph[C]{bestAlt})
	default:
		panic(core.ErrMalformedLazyGraph)
	}
}

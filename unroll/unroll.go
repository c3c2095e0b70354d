// File: unroll.go
// Role: The interpreter for core.LazyGraph.
package unroll

import "github.com/katalvlaran/mrsc/core"

// Unroll materializes every core.Graph a core.LazyGraph denotes:
//
//   - EmptyGraph -> nil
//   - Stop(c)    -> [Back(c)]
//   - Build(c, lss) -> for each alternative ls in lss, the cartesian
//     product of Unroll(l) for l in ls, each tuple wrapped under
//     Forth(c, ·); alternatives concatenated in order.
//
// This must agree exactly with engine.NaiveMrsc when l ==
// engine.LazyMrsc(w, c) for the same (w, c) — that agreement is the
// central correctness property of the staged representation, and is
// tested in engine/lazy_test.go.
func Unroll[C any](l core.LazyGraph[C]) []core.Graph[C] {
	switch l.Kind {
	case core.EmptyLazyKind:
		return nil
	case core.StopLazyKind:
		return []core.Graph[C]{core.Back(l.Conf)}
	case core.BuildLazyKind:
		var out []core.Graph[C]
		for _, alt := range l.Alts {
			childSets := make([][]core.Graph[C], len(alt))
			for i, child := range alt {
				childSets[i] = Unroll(child)
			}
			for _, tuple := range core.Cartesian(childSets) {
				out = append(out, core.Forth(l.Conf, tuple))
			}
		}
		return out
	default:
		panic(core.ErrMalformedLazyGraph)
	}
}

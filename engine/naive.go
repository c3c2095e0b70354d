// File: naive.go
// Role: The eager multi-result driver. Returns the full ordered
// sequence of residual graphs for a starting configuration — useful as
// the ground truth lazy_mrsc/unroll must reproduce, and fine on its
// own for worlds small enough that materializing everything isn't a
// problem.
package engine

import "github.com/katalvlaran/mrsc/core"

// NaiveMrsc returns every residual graph a supercompiler following w
// could produce for c0, in the order fixed by w.Develop's
// alternatives, then the order within each alternative, then the
// lexicographic order of core.Cartesian (within one alternative's
// tuples the first child varies slowest and the last child fastest —
// see core.Cartesian's doc comment).
func NaiveMrsc[C any](w core.World[C], c0 C) []core.Graph[C] {
	return naiveLoop(w, nil, c0)
}

// naiveLoop is a three-way case split on (c, history):
//
//  1. c folds to an ancestor in history -> yield exactly [Back(c)].
//  2. history is dangerous (the whistle fires) -> yield [].
//  3. otherwise develop c and recurse into every alternative.
func naiveLoop[C any](w core.World[C], history []C, c C) []core.Graph[C] {
	if core.IsFoldableToHistory(w, c, history) {
		return []core.Graph[C]{core.Back(c)}
	}
	if w.IsDangerous(history) {
		return nil
	}

	childHistory := core.Prepend(c, history)
	alternatives := w.Develop(c)

	var out []core.Graph[C]
	for _, alt := range alternatives {
		childSets := make([][]core.Graph[C], len(alt))
		for i, sub := range alt {
			childSets[i] = naiveLoop(w, childHistory, sub)
		}
		for _, tuple := range core.Cartesian(childSets) {
			out = append(out, core.Forth(c, tuple))
		}
	}
	return out
}

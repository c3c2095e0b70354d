// File: lazy.go
// Role: The staged multi-result driver. Same case split as NaiveMrsc,
// but instead of recursing eagerly into graphs it recurses into
// further LazyGraph values and lets unroll.Unroll (or a cleaner)
// decide what, if anything, gets materialized.
package engine

import "github.com/katalvlaran/mrsc/core"

// LazyMrsc returns the staged set of residual graphs for c0: Stop on a
// fold, EmptyGraph on the whistle, Build(c0, lss) otherwise, where
// lss[i][j] is the recursive LazyMrsc of w.Develop(c0)[i][j] evaluated
// against the extended history.
func LazyMrsc[C any](w core.World[C], c0 C) core.LazyGraph[C] {
	return lazyLoop(w, nil, c0)
}

func lazyLoop[C any](w core.World[C], history []C, c C) core.LazyGraph[C] {
	if core.IsFoldableToHistory(w, c, history) {
		return core.Stop(c)
	}
	if w.IsDangerous(history) {
		return core.EmptyGraph[C]()
	}

	childHistory := core.Prepend(c, history)
	alternatives := w.Develop(c)

	lss := make([][]core.LazyGraph[C], len(alternatives))
	for i, alt := range alternatives {
		ls := make([]core.LazyGraph[C], len(alt))
		for j, sub := range alt {
			ls[j] = lazyLoop(w, childHistory, sub)
		}
		lss[i] = ls
	}
	return core.Build(c, lss)
}

// File: build.go
// Role: BuildCograph, the infinite counterpart of engine.LazyMrsc. It
// never consults IsDangerous — that check is deferred entirely to
// PruneCograph/Prune, so a world whose search tree is genuinely
// infinite can still be represented (just never fully unrolled).
package cograph

import "github.com/katalvlaran/mrsc/core"

// BuildCograph returns the infinite, lazily-expanded co-graph for c0:
// Stop∞ on a fold against history, Build∞(c0, ·) otherwise, where
// forcing the result computes w.Develop(c0) and recurses into each
// sub-configuration against the extended history.
func BuildCograph[C any](w core.World[C], c0 C) LazyGraphInf[C] {
	return buildCographLoop(w, nil, c0)
}

func buildCographLoop[C any](w core.World[C], history []C, c C) LazyGraphInf[C] {
	if core.IsFoldableToHistory(w, c, history) {
		return StopInf(c)
	}
	childHistory := core.Prepend(c, history)
	return BuildInf(c, func() [][]LazyGraphInf[C] {
		alternatives := w.Develop(c)
		lss := make([][]LazyGraphInf[C], len(alternatives))
		for i, alt := range alternatives {
			ls := make([]LazyGraphInf[C], len(alt))
			for j, sub := range alt {
				ls[j] = buildCographLoop(w, childHistory, sub)
			}
			lss[i] = ls
		}
		return lss
	})
}

// File: prune.go
// Role: PruneCograph and its optimized sibling Prune — the two ways to
// turn an infinite LazyGraphInf back into a finite core.LazyGraph by
// applying the whistle (IsDangerous) while walking down, forcing one
// thunk per visited node.
package cograph

import "github.com/katalvlaran/mrsc/core"

// PruneCograph applies the whistle to l, producing the same
// core.LazyGraph engine.LazyMrsc(w, c0) would have produced had
// BuildCograph(w, c0) been engine.LazyMrsc all along.
func PruneCograph[C any](w core.World[C], l LazyGraphInf[C]) core.LazyGraph[C] {
	return pruneLoop(w, nil, l, false)
}

// Prune is PruneCograph plus one optimization: when forcing a Build∞
// node, any alternative whose immediate children already include a
// forced Empty∞ is dropped without recursing into its surviving
// siblings. Its result may have fewer alternatives than PruneCograph's
// but unrolls to exactly the same graphs; it just gets there without
// visiting sub-trees that are already known to contribute nothing.
func Prune[C any](w core.World[C], l LazyGraphInf[C]) core.LazyGraph[C] {
	return pruneLoop(w, nil, l, true)
}

func pruneLoop[C any](w core.World[C], history []C, l LazyGraphInf[C], optimize bool) core.LazyGraph[C] {
	switch l.Kind {
	case EmptyInfKind:
		return core.EmptyGraph[C]()
	case StopInfKind:
		return core.Stop(l.Conf)
	case BuildInfKind:
		if w.IsDangerous(history) {
			return core.EmptyGraph[C]()
		}
		childHistory := core.Prepend(l.Conf, history)
		alternatives := l.Force()

		var lss [][]core.LazyGraph[C]
		for _, alt := range alternatives {
			if optimize && altHasForcedEmpty(alt) {
				continue
			}
			ls := make([]core.LazyGraph[C], len(alt))
			for j, child := range alt {
				ls[j] = pruneLoop(w, childHistory, child, optimize)
			}
			lss = append(lss, ls)
		}
		return core.Build(l.Conf, lss)
	default:
		panic(core.ErrMalformedLazyGraph)
	}
}

func altHasForcedEmpty[C any](alt []LazyGraphInf[C]) bool {
	for _, child := range alt {
		if child.Kind == EmptyInfKind {
			return true
		}
	}
	return false
}

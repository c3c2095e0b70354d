// File: empty.go
// Role: cl_empty — prunes sub-trees that denote the empty
// set.
package cleaners

import "github.com/katalvlaran/mrsc/core"

// CleanEmpty rewrites l by recursively cleaning every alternative's
// children; an alternative is dropped in full the moment any one of
// its children cleans down to EmptyGraph, and a Build node collapses
// to EmptyGraph once every alternative has been dropped. Idempotent:
// CleanEmpty(CleanEmpty(l)) == CleanEmpty(l).
func CleanEmpty[C any](l core.LazyGraph[C]) core.LazyGraph[C] {
	switch l.Kind {
	case core.EmptyLazyKind, core.StopLazyKind:
		return l
	case core.BuildLazyKind:
		var survivingAlts [][]core.LazyGraph[C]
		for _, alt := range l.Alts {
			cleanedAlt := make([]core.LazyGraph[C], 0, len(alt))
			dead := false
			for _, child := range alt {
				cc := CleanEmpty(child)
				if cc.Kind == core.EmptyLazyKind {
					dead = true
					break
				}
				cleanedAlt = append(cleanedAlt, cc)
			}
			if !dead {
				survivingAlts = append(survivingAlts, cleanedAlt)
			}
		}
		if len(survivingAlts) == 0 {
			return core.EmptyGraph[C]()
		}
		return core.Build(l.Conf, survivingAlts)
	default:
		panic(core.ErrMalformedLazyGraph)
	}
}

// File: badconf.go
// Role: cl_bad_conf(bad) and cl_empty_and_bad(bad), plus
// the badness-filter helpers used to state and test the "badness
// filter law".
package cleaners

import "github.com/katalvlaran/mrsc/core"

// CleanBadConf discards, in full, any sub-tree rooted at a
// configuration c with bad(c) == true. It does not remove the empty
// alternatives that can result — compose with CleanEmpty (or just call
// CleanEmptyAndBad) to get that.
func CleanBadConf[C any](bad func(C) bool, l core.LazyGraph[C]) core.LazyGraph[C] {
	switch l.Kind {
	case core.EmptyLazyKind:
		return l
	case core.StopLazyKind:
		if bad(l.Conf) {
			return core.EmptyGraph[C]()
		}
		return l
	case core.BuildLazyKind:
		if bad(l.Conf) {
			return core.EmptyGraph[C]()
		}
		newAlts := make([][]core.LazyGraph[C], len(l.Alts))
		for i, alt := range l.Alts {
			newAlt := make([]core.LazyGraph[C], len(alt))
			for j, child := range alt {
				newAlt[j] = CleanBadConf(bad, child)
			}
			newAlts[i] = newAlt
		}
		return core.Build(l.Conf, newAlts)
	default:
		panic(core.ErrMalformedLazyGraph)
	}
}

// CleanEmptyAndBad is cl_empty ∘ cl_bad_conf(bad): remove every
// bad-rooted sub-tree, then collapse the empty alternatives that left
// behind.
func CleanEmptyAndBad[C any](bad func(C) bool, l core.LazyGraph[C]) core.LazyGraph[C] {
	return CleanEmpty(CleanBadConf(bad, l))
}

// BadGraph reports whether some node of g carries a configuration for
// which bad returns true.
func BadGraph[C any](bad func(C) bool, g core.Graph[C]) bool {
	if bad(g.Conf) {
		return true
	}
	switch g.Kind {
	case core.BackKind:
		return false
	case core.ForthKind:
		for _, child := range g.Children {
			if BadGraph(bad, child) {
				return true
			}
		}
		return false
	default:
		panic(core.ErrMalformedGraph)
	}
}

// FilterBadConf returns the sub-sequence of gs containing no bad
// configuration at all, preserving order — the filter-form
// CleanEmptyAndBad must agree with exactly.
func FilterBadConf[C any](bad func(C) bool, gs []core.Graph[C]) []core.Graph[C] {
	var out []core.Graph[C]
	for _, g := range gs {
		if !BadGraph(bad, g) {
			out = append(out, g)
		}
	}
	return out
}

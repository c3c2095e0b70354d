// File: cleaners8.go
// Role: The co-graph-level counterparts of cleaners.CleanBadConf and
// cleaners.CleanEmpty. Both must stay productive: neither is allowed
// to force a thunk the caller didn't already force, or a world with a
// genuinely infinite search tree would hang before PruneCograph ever
// gets a chance to apply the whistle.
package cograph

// CleanBadConfInf discards, in full, any sub-tree rooted at a
// configuration c with bad(c) == true — lazily: a Build∞ node under a
// good configuration keeps its own thunk, wrapping the original so
// that forcing it cleans each child in turn without forcing anything
// beyond what the caller asks for.
func CleanBadConfInf[C any](bad func(C) bool, l LazyGraphInf[C]) LazyGraphInf[C] {
	switch l.Kind {
	case EmptyInfKind:
		return l
	case StopInfKind:
		if bad(l.Conf) {
			return EmptyGraphInf[C]()
		}
		return l
	case BuildInfKind:
		if bad(l.Conf) {
			return EmptyGraphInf[C]()
		}
		c := l.Conf
		return BuildInf(c, func() [][]LazyGraphInf[C] {
			original := l.Force()
			out := make([][]LazyGraphInf[C], len(original))
			for i, alt := range original {
				cleaned := make([]LazyGraphInf[C], len(alt))
				for j, child := range alt {
					cleaned[j] = CleanBadConfInf(bad, child)
				}
				out[i] = cleaned
			}
			return out
		})
	default:
		return l
	}
}

// CleanEmptyInf is a best-effort optimization, not a semantic cleaner:
// when its thunk is forced, it drops any alternative containing a
// child that is already, without any further forcing, Empty∞ (for
// instance one CleanBadConfInf introduced). It does not attempt to
// decide whether a surviving Build∞ child will eventually force down
// to the empty set — doing that would require forcing arbitrarily far
// ahead, defeating the point of staying lazy. A Build∞(c, ·) that
// denotes the empty set only once fully forced is therefore left as
// is; only PruneCograph's whistle is guaranteed to terminate it.
func CleanEmptyInf[C any](l LazyGraphInf[C]) LazyGraphInf[C] {
	switch l.Kind {
	case EmptyInfKind, StopInfKind:
		return l
	case BuildInfKind:
		c := l.Conf
		return BuildInf(c, func() [][]LazyGraphInf[C] {
			original := l.Force()
			var out [][]LazyGraphInf[C]
			for _, alt := range original {
				cleaned := make([]LazyGraphInf[C], len(alt))
				dead := false
				for i, child := range alt {
					cc := CleanEmptyInf(child)
					if cc.Kind == EmptyInfKind {
						dead = true
						break
					}
					cleaned[i] = cc
				}
				if !dead {
					out = append(out, cleaned)
				}
			}
			return out
		})
	default:
		return l
	}
}

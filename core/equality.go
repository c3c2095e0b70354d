// File: equality.go
// Role: Structural equality for Graph/LazyGraph: same Kind, same
// Conf, same children, recursively. There is no hashing implementation
// here — neither type is ever used as a map key inside this module;
// callers who need that can compute a key from a comparable projection
// of C themselves.
package core

// GraphEqual reports whether a and b denote the same residual tree:
// same Kind, same Conf (by ==), and — for Forth — pairwise-equal
// Children in the same order.
func GraphEqual[C comparable](a, b Graph[C]) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case BackKind:
		return a.Conf == b.Conf
	case ForthKind:
		if a.Conf != b.Conf || len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !GraphEqual(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	default:
		panic(ErrMalformedGraph)
	}
}

// GraphsEqual reports whether two ordered sequences of graphs are
// equal element-wise, in order.
func GraphsEqual[C comparable](as, bs []Graph[C]) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !GraphEqual(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// LazyGraphEqual reports whether two LazyGraph values have the same
// shape: same Kind, same Conf where meaningful, and — for Build —
// pairwise-equal alternatives (same count of alternatives, each with
// the same count of children, each child equal in order).
func LazyGraphEqual[C comparable](a, b LazyGraph[C]) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case EmptyLazyKind:
		return true
	case StopLazyKind:
		return a.Conf == b.Conf
	case BuildLazyKind:
		if a.Conf != b.Conf || len(a.Alts) != len(b.Alts) {
			return false
		}
		for i := range a.Alts {
			if len(a.Alts[i]) != len(b.Alts[i]) {
				return false
			}
			for j := range a.Alts[i] {
				if !LazyGraphEqual(a.Alts[i][j], b.Alts[i][j]) {
					return false
				}
			}
		}
		return true
	default:
		panic(ErrMalformedLazyGraph)
	}
}

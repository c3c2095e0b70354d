// File: nw.go
// Role: NW, the extended-naturals lattice a counter-machine
// configuration's components live in: a finite count, or omega
// standing for "arbitrarily large, already generalized".
package counters

import "strconv"

// NW is a two-case tagged value: a finite natural, or Omega. Named
// methods are the primary interface deliberately — operator overloading
// would hide the promotion-to-Omega rule arithmetic and comparison both
// follow.
type NW struct {
	omega bool
	n     int
}

// N constructs the finite value i. Negative i is a caller error; this
// package never produces one internally.
func N(i int) NW {
	return NW{n: i}
}

// omegaValue is the single Omega instance; Omega returns it by value.
var omegaValue = NW{omega: true}

// Omega returns the top element of the lattice.
func Omega() NW {
	return omegaValue
}

// IsOmega reports whether a is the top element.
func (a NW) IsOmega() bool {
	return a.omega
}

// Add promotes to Omega if either operand is Omega.
func (a NW) Add(b NW) NW {
	if a.omega || b.omega {
		return Omega()
	}
	return N(a.n + b.n)
}

// Sub promotes to Omega if either operand is Omega.
func (a NW) Sub(b NW) NW {
	if a.omega || b.omega {
		return Omega()
	}
	return N(a.n - b.n)
}

// Ge reports whether a is at least k. Omega is greater than every
// integer, so Ge always holds on it — this is the guard-evaluation
// sense of "≥", not the whistle's sense; see IsDangerous in world.go
// for the one place those two readings differ.
func (a NW) Ge(k int) bool {
	if a.omega {
		return true
	}
	return a.n >= k
}

// IsIn reports whether a is subsumed by b: equal on finite values, and
// unconditionally true when b is Omega. This is the per-component
// foldability test CountersScWorld.IsFoldableTo lifts over a whole
// configuration.
func (a NW) IsIn(b NW) bool {
	if b.omega {
		return true
	}
	if a.omega {
		return false
	}
	return a.n == b.n
}

// finiteGE reports whether a is a finite value at least k. Unlike Ge,
// Omega answers false here — the whistle's "some component has grown
// past max_nw" check must not re-flag a component that has already
// been generalized away.
func (a NW) finiteGE(k int) bool {
	return !a.omega && a.n >= k
}

// String renders a as "ω" or its decimal value.
func (a NW) String() string {
	if a.omega {
		return "ω"
	}
	return strconv.Itoa(a.n)
}

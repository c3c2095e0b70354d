// File: guard.go
// Role: Guard combinators resolving spec.md §9's open question about
// the Futurebus cache-coherence protocol: one of its guards combines
// two sub-conditions with bitwise-and rather than logical-and, which
// evaluates both sides unconditionally instead of short-circuiting on
// the first false one. Futurebus's own source is not among the files
// this module's original_source/ retrieval pack kept, so there is no
// Futurebus instance to port here — but the ambiguity itself is
// spec.md's, not Futurebus's source, and a conforming implementation
// must still decide it rather than silently picking one reading. Where
// the distinction cannot change a guard's truth value it is harmless;
// where a sub-condition has a side effect or can panic on a
// configuration the first conjunct would have screened out, it is not.
// This package resolves it as two named, explicitly-chosen combinators
// instead of silently translating bitwise-and to logical-and.
package counters

// GuardLogicalAnd combines a and b with ordinary short-circuit
// evaluation: b is never called if a(c) is false.
func GuardLogicalAnd(a, b func(Conf) bool) func(Conf) bool {
	return func(c Conf) bool {
		if !a(c) {
			return false
		}
		return b(c)
	}
}

// GuardBitwiseAnd combines a and b the way a bitwise-and over boolean
// operands does in the source protocol: both sides are evaluated
// unconditionally, and the result is their conjunction.
func GuardBitwiseAnd(a, b func(Conf) bool) func(Conf) bool {
	return func(c Conf) bool {
		ra := a(c)
		rb := b(c)
		return ra && rb
	}
}

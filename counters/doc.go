// Package counters provides a concrete core.World[Conf] for
// counter-machine-style protocols — finite collections of named
// counters, driven by guarded rules — together with the NW lattice
// (a finite natural, or the top element omega) that lets a
// supercompiler safely generalize an unbounded counter instead of
// diverging on it.
//
// CountersWorld is the protocol-author-facing interface: start state,
// enabled-rule enumeration, and an unsafety predicate. CountersScWorld
// adapts a CountersWorld into core.World[Conf] by adding the whistle
// (max_nw, max_depth) and the rebuild step that widens a finite
// counter to omega. This mirrors the way lvlath/tsp wraps a bare
// distance matrix with the extra bookkeeping (start city, visited set)
// an algorithm needs without changing what the matrix itself means.
package counters

// Package mrsc implements multi-result big-step supercompilation: a
// family of algorithms for exploring, and finitely summarizing, the
// (possibly infinite) space of residual programs a term-rewriting
// system can produce under repeated driving.
//
// Packages:
//
//	core/     — Graph[C]/LazyGraph[C] value trees and the World[C] contract
//	engine/   — NaiveMrsc (eager) and LazyMrsc (staged) drivers
//	unroll/   — materializes a LazyGraph back into its denoted Graph sequence
//	cleaners/ — semantics-narrowing LazyGraph transforms (empty/bad-conf/min-size)
//	cograph/  — the infinite, co-inductive LazyGraphInf and its pruners
//	stats/    — counting and size statistics without materialization
//	counters/ — a worked World instance: guarded counter-machine protocols
//	printer/  — an ASCII tree renderer for Graph, for diagnostics
//
// A supercompilation run is a single straight-line recursive
// traversal: no shared mutable state, no concurrency, no I/O. See each
// package's own doc comment for its part of the algebra.
package mrsc

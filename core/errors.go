// File: errors.go
// Role: Sentinel panic values for invariant violations.
//
// Error policy: the core is total on well-formed inputs.
// There is nothing a caller can pass to Graph/LazyGraph dispatch that
// is recoverable — a value with a Kind outside {Back,Forth} or
// {Empty,Stop,Build} can only arise from hand-built structs that skip
// the constructors in types.go, which is a programmer error, not a runtime
// condition callers should branch on. Such conditions panic with one
// of the sentinels below rather than returning an error, matching
// lvlath's "algorithms don't return errors for things only a caller
// who bypassed the constructors could trigger" split.
package core

import "errors"

var (
	// ErrMalformedGraph is raised when a Graph[C]'s Kind is neither
	// BackKind nor ForthKind.
	ErrMalformedGraph = errors.New("core: malformed Graph variant")

	// ErrMalformedLazyGraph is raised when a LazyGraph[C]'s Kind is
	// none of EmptyLazyKind, StopLazyKind, BuildLazyKind.
	ErrMalformedLazyGraph = errors.New("core: malformed LazyGraph variant")
)

// Package engine implements the two multi-result supercompilation
// drivers: NaiveMrsc, the eager reference implementation that returns
// every residual graph directly, and LazyMrsc, the staged
// implementation that returns a core.LazyGraph instead of
// materializing anything.
//
// Both are a single recursive walk of the same shape — fold-check,
// whistle-check, else develop-and-recurse — structured the way
// lvlath's dfs.DFS is structured: a small recursive function carrying
// the world as its only parameter besides the position (no separate
// options, since the world supplies the whistle), with history playing the role DFS's
// depth counter plays, and the same per-call "build a fresh slice,
// never mutate the caller's" discipline DFS's Options/visited
// bookkeeping uses.
//
// Semantic law (tested in lazy_test.go): for every world w and
// starting configuration c,
//
//	unroll.Unroll(LazyMrsc(w, c)) == NaiveMrsc(w, c)
package engine

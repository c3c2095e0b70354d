// Package stats computes aggregate properties of the set a
// core.LazyGraph denotes without ever materializing it: how many
// graphs it contains (LengthUnroll), and the total node count summed
// across all of them (SizeUnroll). Both walk the staged representation
// once, combining per-child answers the way lvlath/tsp's cost
// accumulation folds a tour's edge weights into a running total rather
// than rebuilding the tour to re-measure it.
package stats

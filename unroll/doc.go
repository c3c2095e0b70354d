// Package unroll converts a staged core.LazyGraph back into the
// ordered sequence of core.Graph values it denotes. It plays the role
// lvlath's converterts package plays for that library —
// a small, single-purpose adapter between two representations of the
// same information — except here the two representations are staged
// vs. materialized search spaces rather than two third-party graph
// libraries.
//
// Unroll never looks at the World that produced its input: everything
// it needs is already recorded in the LazyGraph's shape. That is what
// makes cleaners composable — any LazyGraph->LazyGraph transformation
// that preserves Unroll's output (up to dropping elements, never
// reordering or inventing them) can be inserted before this step with
// no other code changing.
package unroll

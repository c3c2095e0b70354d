// File: cartesian.go
// Role: The one combinatorial primitive shared by the eager engine
// (engine.NaiveMrsc), the unroll interpreter (unroll.Unroll), and the
// counter world's rebuild step (counters.CountersScWorld): the
// cartesian product of an ordered list of ordered lists.
//
// Ordering contract: inputs are ordered
// sequences only. An empty factor collapses the whole product to
// empty. Otherwise the product is lexicographic with the first factor
// varying slowest — i.e. Cartesian([[1,2],[10,20]]) yields
// [[1,10],[1,20],[2,10],[2,20]].
package core

// Cartesian computes the cartesian product of xss, preserving the
// lexicographic order described above. If any inner slice is empty the
// result is empty (a single empty-or-missing factor kills the whole
// product, even if other factors are non-empty).
//
// Complexity: O(prod(len(xss[i]))) tuples, each of length len(xss).
func Cartesian[T any](xss [][]T) [][]T {
	if len(xss) == 0 {
		// The product of zero factors is the single empty tuple.
		return [][]T{{}}
	}
	for _, xs := range xss {
		if len(xs) == 0 {
			return nil
		}
	}

	result := [][]T{{}}
	for _, xs := range xss {
		next := make([][]T, 0, len(result)*len(xs))
		for _, prefix := range result {
			for _, x := range xs {
				tuple := make([]T, len(prefix)+1)
				copy(tuple, prefix)
				tuple[len(prefix)] = x
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}

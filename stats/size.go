// File: size.go
// Role: SizeUnroll and LengthUnroll — count and total node-size of the
// graphs a core.LazyGraph denotes, computed directly against the
// staged representation.
package stats

import "github.com/katalvlaran/mrsc/core"

// LengthUnroll returns len(unroll.Unroll(l)) without calling Unroll:
// Empty -> 0; Stop -> 1; Build(_, lss) -> the sum, over alternatives,
// of the product of each child's length.
func LengthUnroll[C any](l core.LazyGraph[C]) int {
	count, _ := sizeStats(l)
	return count
}

// SizeUnroll returns (n, total) where n == LengthUnroll(l) and total
// is the sum of core.GraphSize(g) over every g in unroll.Unroll(l) —
// again without ever calling Unroll.
func SizeUnroll[C any](l core.LazyGraph[C]) (int, int) {
	return sizeStats(l)
}

// sizeStats computes (count, sum) where sum is the total GraphSize
// across the count denoted graphs. For a cartesian product of children
// with independent (count_i, sum_i) pairs, the combined pair is:
//
//	count = Π count_i
//	sum   = Σ_i sum_i * (count / count_i)
//
// because each child's sizes are summed once per combination of the
// other children.
func sizeStats[C any](l core.LazyGraph[C]) (int, int) {
	switch l.Kind {
	case core.EmptyLazyKind:
		return 0, 0
	case core.StopLazyKind:
		return 1, 1
	case core.BuildLazyKind:
		totalCount, totalSum := 0, 0
		for _, alt := range l.Alts {
			childCounts := make([]int, len(alt))
			childSums := make([]int, len(alt))
			product := 1
			for i, child := range alt {
				childCounts[i], childSums[i] = sizeStats(child)
				product *= childCounts[i]
			}
			if product == 0 {
				continue
			}
			tupleSum := 0
			for i := range alt {
				others := product / childCounts[i]
				tupleSum += childSums[i] * others
			}
			// +product accounts for the Forth(c, ·) node itself, once
			// per tuple this alternative contributes.
			totalCount += product
			totalSum += tupleSum + product
		}
		return totalCount, totalSum
	default:
		panic(core.ErrMalformedLazyGraph)
	}
}

// SPDX-License-Identifier: MIT
package stats_test

import (
	"testing"

	"github.com/katalvlaran/mrsc/core"
	"github.com/katalvlaran/mrsc/engine"
	"github.com/katalvlaran/mrsc/stats"
	"github.com/katalvlaran/mrsc/unroll"
	"github.com/stretchr/testify/assert"
)

type mockWorld struct{}

func (mockWorld) IsFoldableTo(a, b int) bool { return a == b }
func (mockWorld) IsDangerous(h []int) bool   { return len(h) > 3 }

func (mockWorld) Develop(c int) [][]int {
	var drive [][]int
	if c >= 2 {
		drive = [][]int{{0, c - 1}, {c - 1}}
	}
	return append(drive, []int{c + 1})
}

// TestSizeUnroll_MatchesDirectMaterialization VERIFIES that
// LengthUnroll/SizeUnroll agree with computing the same quantities by
// materializing every graph with unroll.Unroll and core.GraphSize.
func TestSizeUnroll_MatchesDirectMaterialization(t *testing.T) {
	l := engine.LazyMrsc[int](mockWorld{}, 0)
	graphs := unroll.Unroll(l)

	wantCount := len(graphs)
	wantSum := 0
	for _, g := range graphs {
		wantSum += core.GraphSize(g)
	}

	assert.Equal(t, wantCount, stats.LengthUnroll(l))
	gotCount, gotSum := stats.SizeUnroll(l)
	assert.Equal(t, wantCount, gotCount)
	assert.Equal(t, wantSum, gotSum)
}

// TestSizeUnroll_Empty VERIFIES the base case.
func TestSizeUnroll_Empty(t *testing.T) {
	assert.Equal(t, 0, stats.LengthUnroll(core.EmptyGraph[int]()))
	count, sum := stats.SizeUnroll(core.EmptyGraph[int]())
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, sum)
}

// TestSizeUnroll_Stop VERIFIES the singleton case.
func TestSizeUnroll_Stop(t *testing.T) {
	count, sum := stats.SizeUnroll(core.Stop(42))
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, sum)
}

// TestSizeUnroll_AcrossStartingConfigurations VERIFIES agreement with
// direct materialization for a spread of starting configurations, not
// just zero.
func TestSizeUnroll_AcrossStartingConfigurations(t *testing.T) {
	w := mockWorld{}
	for c0 := 0; c0 <= 5; c0++ {
		l := engine.LazyMrsc[int](w, c0)
		graphs := unroll.Unroll(l)

		wantSum := 0
		for _, g := range graphs {
			wantSum += core.GraphSize(g)
		}

		gotCount, gotSum := stats.SizeUnroll(l)
		assert.Equalf(t, len(graphs), gotCount, "c0=%d", c0)
		assert.Equalf(t, wantSum, gotSum, "c0=%d", c0)
	}
}

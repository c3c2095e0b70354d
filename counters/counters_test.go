// SPDX-License-Identifier: MIT
package counters_test

import (
	"testing"

	"github.com/katalvlaran/mrsc/cleaners"
	"github.com/katalvlaran/mrsc/core"
	"github.com/katalvlaran/mrsc/counters"
	"github.com/katalvlaran/mrsc/engine"
	"github.com/katalvlaran/mrsc/stats"
	"github.com/katalvlaran/mrsc/unroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTwoTokenWorld_MinSizeResidual VERIFIES the two-token protocol's
// exact minimum-size residual graph: starting from [N(2), N(0)], the
// smallest graph generalizes both counters to omega in one step and
// immediately folds both of omega's driven successors back to it.
func TestTwoTokenWorld_MinSizeResidual(t *testing.T) {
	w := counters.NewCountersScWorld(counters.TwoTokenWorld{}, 3, 10)
	l := engine.LazyMrsc[counters.Conf](w, w.Start())
	got := unroll.Unroll(cleaners.CleanMinSize(l))
	require.Len(t, got, 1)

	want := core.Forth(counters.Conf{counters.N(2), counters.N(0)}, []core.Graph[counters.Conf]{
		core.Forth(counters.Conf{counters.Omega(), counters.Omega()}, []core.Graph[counters.Conf]{
			core.Back(counters.Conf{counters.Omega(), counters.Omega()}),
			core.Back(counters.Conf{counters.Omega(), counters.Omega()}),
		}),
	})
	assert.True(t, confGraphEqual(want, got[0]))
	assert.Equal(t, 4, core.GraphSize(got[0]))
}

func confGraphEqual(a, b core.Graph[counters.Conf]) bool {
	if a.Kind != b.Kind || !confEqual(a.Conf, b.Conf) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !confGraphEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func confEqual(a, b counters.Conf) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestNW_Arithmetic VERIFIES the promotion-to-omega rules for Add/Sub
// and the asymmetric IsIn relation.
func TestNW_Arithmetic(t *testing.T) {
	assert.Equal(t, counters.N(5), counters.N(2).Add(counters.N(3)))
	assert.True(t, counters.N(2).Add(counters.Omega()).IsOmega())
	assert.True(t, counters.Omega().Sub(counters.N(9)).IsOmega())

	assert.True(t, counters.N(4).Ge(4))
	assert.False(t, counters.N(4).Ge(5))
	assert.True(t, counters.Omega().Ge(1000))

	assert.True(t, counters.N(3).IsIn(counters.N(3)))
	assert.False(t, counters.N(3).IsIn(counters.N(4)))
	assert.True(t, counters.N(3).IsIn(counters.Omega()))
	assert.False(t, counters.Omega().IsIn(counters.N(3)))
	assert.True(t, counters.Omega().IsIn(counters.Omega()))
}

// TestSynapse_IsUnsafe VERIFIES the literal is_unsafe predicate ported
// from protocols.py: a dirty line coexisting with a valid one, or two
// dirty lines at once, is unsafe; a single dirty line with no valid
// copies, or no dirty lines at all, is not.
func TestSynapse_IsUnsafe(t *testing.T) {
	s := counters.Synapse{}
	assert.False(t, s.IsUnsafe(counters.Conf{counters.Omega(), counters.N(0), counters.N(0)}))
	assert.False(t, s.IsUnsafe(counters.Conf{counters.N(0), counters.N(1), counters.N(0)}))
	assert.True(t, s.IsUnsafe(counters.Conf{counters.N(0), counters.N(1), counters.N(1)}))
	assert.True(t, s.IsUnsafe(counters.Conf{counters.N(0), counters.N(2), counters.N(0)}))
}

// TestSynapse_MinSizeResidual VERIFIES that running Synapse through the
// same lazy_mrsc/cl_empty_and_bad/cl_min_size pipeline
// test_protocols.py exercises it with (m=3, d=10) produces exactly one
// minimum-size residual graph, rooted at Start(), whose node count
// agrees with core.GraphSize and with stats.SizeUnroll computed over
// the same cleaned lazy graph.
func TestSynapse_MinSizeResidual(t *testing.T) {
	s := counters.Synapse{}
	w := counters.NewCountersScWorld(s, 3, 10)
	l := engine.LazyMrsc[counters.Conf](w, w.Start())

	cleaned := cleaners.CleanEmptyAndBad(func(c counters.Conf) bool { return s.IsUnsafe(c) }, l)
	got := unroll.Unroll(cleaners.CleanMinSize(cleaned))
	require.Len(t, got, 1)
	assert.True(t, confEqual(w.Start(), got[0].Conf))

	wantSize := core.GraphSize(got[0])
	gotCount, gotSize := stats.SizeUnroll(cleaners.CleanMinSize(cleaned))
	require.Equal(t, 1, gotCount)
	assert.Equal(t, wantSize, gotSize)
}

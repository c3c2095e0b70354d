// SPDX-License-Identifier: MIT
package counters_test

import (
	"testing"

	"github.com/katalvlaran/mrsc/counters"
	"github.com/stretchr/testify/assert"
)

// TestGuardLogicalAnd_ShortCircuits VERIFIES that the second conjunct
// is never called once the first has already failed.
func TestGuardLogicalAnd_ShortCircuits(t *testing.T) {
	calledB := false
	a := func(counters.Conf) bool { return false }
	b := func(counters.Conf) bool { calledB = true; return true }

	got := counters.GuardLogicalAnd(a, b)(counters.Conf{counters.N(0)})
	assert.False(t, got)
	assert.False(t, calledB, "GuardLogicalAnd must short-circuit on a false first conjunct")
}

// TestGuardBitwiseAnd_EvaluatesBothSides VERIFIES the deliberately
// preserved bitwise-and reading: the second conjunct runs even though
// the first already failed.
func TestGuardBitwiseAnd_EvaluatesBothSides(t *testing.T) {
	calledB := false
	a := func(counters.Conf) bool { return false }
	b := func(counters.Conf) bool { calledB = true; return true }

	got := counters.GuardBitwiseAnd(a, b)(counters.Conf{counters.N(0)})
	assert.False(t, got)
	assert.True(t, calledB, "GuardBitwiseAnd must evaluate both sides unconditionally")
}

// TestGuards_AgreeWhenBothSidesPure VERIFIES that, absent a side
// effect, the two combinators agree on every truth-table row.
func TestGuards_AgreeWhenBothSidesPure(t *testing.T) {
	for _, ra := range []bool{false, true} {
		for _, rb := range []bool{false, true} {
			a := func(counters.Conf) bool { return ra }
			b := func(counters.Conf) bool { return rb }
			c := counters.Conf{counters.N(0)}
			assert.Equal(t, counters.GuardLogicalAnd(a, b)(c), counters.GuardBitwiseAnd(a, b)(c))
		}
	}
}

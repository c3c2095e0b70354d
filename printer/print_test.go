// SPDX-License-Identifier: MIT
package printer_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/mrsc/core"
	"github.com/katalvlaran/mrsc/printer"
	"github.com/stretchr/testify/assert"
)

func itoa(c int) string { return strconv.Itoa(c) }

// TestPrintGraph_Leaf VERIFIES a single Back node renders as one line
// with the trailing fold marker and no trailing newline.
func TestPrintGraph_Leaf(t *testing.T) {
	got := printer.PrintGraph(core.Back(7), itoa)
	assert.Equal(t, "|__7*", got)
}

// TestPrintGraph_Nested VERIFIES indentation and the standalone "|"
// continuation line on a three-level tree with a branching leaf level,
// matching graph_pretty_printer's literal output.
func TestPrintGraph_Nested(t *testing.T) {
	g := core.Forth(0, []core.Graph[int]{
		core.Forth(1, []core.Graph[int]{
			core.Forth(2, []core.Graph[int]{core.Back(0), core.Back(1)}),
		}),
	})

	want := "" +
		"|__0\n" +
		"  |\n" +
		"  |__1\n" +
		"    |\n" +
		"    |__2\n" +
		"      |\n" +
		"      |__0*\n" +
		"      |\n" +
		"      |__1*"

	assert.Equal(t, want, printer.PrintGraph(g, itoa))
}

// TestPrintGraph_SiblingsAtRoot VERIFIES a node with two children both
// get the same indentation, each preceded by its own continuation
// line, as siblings rather than nested.
func TestPrintGraph_SiblingsAtRoot(t *testing.T) {
	g := core.Forth(5, []core.Graph[int]{core.Back(1), core.Back(2)})

	want := "" +
		"|__5\n" +
		"  |\n" +
		"  |__1*\n" +
		"  |\n" +
		"  |__2*"

	assert.Equal(t, want, printer.PrintGraph(g, itoa))
}

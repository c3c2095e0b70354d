// File: print.go
// Role: PrintGraph — the one pretty-printer this module defines,
// ported from original_source/smrsc/graph.py's graph_pretty_printer.
package printer

import "github.com/katalvlaran/mrsc/core"

// PrintGraph renders g as an indented tree, matching
// graph_pretty_printer's layout exactly: each node is a line
// "<indent>|__<conf>" (a trailing "*" marks a Back node); before each
// child, a standalone continuation line "<indent>  |" is emitted,
// indented two spaces past the parent, and the child itself is
// rendered at that same two-space-deeper indent. The continuation line
// is its own line — it is never glued onto the child's "|__" line, and
// indentation accumulates as plain spaces, not a stack of "|" per
// ancestor. The result carries no trailing newline.
//
// stringify controls how a Conf becomes text; callers with a C that
// already satisfies fmt.Stringer can pass a thin wrapper.
func PrintGraph[C any](g core.Graph[C], stringify func(C) string) string {
	var out []byte
	out = appendGraph(out, g, "", stringify)
	return string(out)
}

func appendGraph[C any](out []byte, g core.Graph[C], indent string, stringify func(C) string) []byte {
	out = append(out, indent...)
	out = append(out, "|__"...)
	out = append(out, stringify(g.Conf)...)
	if g.Kind == core.BackKind {
		return append(out, '*')
	}

	childIndent := indent + "  "
	for _, child := range g.Children {
		out = append(out, '\n')
		out = append(out, childIndent...)
		out = append(out, '|')
		out = append(out, '\n')
		out = appendGraph(out, child, childIndent, stringify)
	}
	return out
}

// Package printer renders a core.Graph as an indented ASCII tree for
// diagnostics. It exists purely for humans reading test failures and
// REPL output — nothing else in this module parses or depends on its
// output format.
package printer

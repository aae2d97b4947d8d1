// printer.go — canonical formatting entry points.
//
// The actual rendering lives on the nodes (ast.go); this file provides the
// whole-tree conveniences used by tests, `core fmt` and the `--ast` dump.
// The printed form is canonical Core source: re-parsing it yields a program
// with identical behavior, and formatting is idempotent.
package core

import "strings"

// Format renders a parsed program as canonical Core source.
func Format(p *Program) string {
	var b strings.Builder
	p.Print(0, &b)
	return b.String()
}

// Pretty parses Core source and returns its canonical formatting. Parse
// failures come back with a caret snippet.
func Pretty(src string) (string, error) {
	prog, err := Parse(src)
	if err != nil {
		return "", WrapErrorWithSource(err, src)
	}
	return Format(prog), nil
}

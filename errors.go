// errors.go — caret-snippet rendering for user-facing diagnostics.
//
// WrapErrorWithSource recognizes the three error kinds produced by this
// package (*LexError, *ParseError, *RuntimeError) and rewrites them as a
// multi-line snippet with a caret under the offending column:
//
//	PARSE ERROR at 2:10: expected ':=', found '='
//
//	   1 | program int x;
//	   2 | begin x = 3
//	     |          ^
//	   3 | end
//
// Any other error is returned unchanged. Lex/parse columns are 0-based and
// rendered 1-based; runtime columns are already 1-based.
package core

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments a lex/parse/runtime error with a caret
// snippet of src. Other errors pass through untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name (e.g. a file
// path) included in the header.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", snippet(src, "RUNTIME ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// snippet builds the header plus up to one line of context either side, with
// a caret under the 1-based column. Coordinates are clamped to the source
// bounds so rendering never fails.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// lexer_test.go
package core

import (
	"reflect"
	"strings"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_MinimalProgram(t *testing.T) {
	src := `program int x; begin x := 3 + 4; write x end`
	want := []TokenType{
		PROGRAM, INT, ID, SEMI,
		BEGIN,
		ID, ASSIGN, INTEGER, PLUS, INTEGER, SEMI,
		WRITE, ID,
		END,
	}
	got := wantTypes(t, src, want)
	if got[7].Value != 3 || got[9].Value != 4 {
		t.Fatalf("integer values not parsed: %v, %v", got[7].Value, got[9].Value)
	}
}

func Test_Lexer_AllOperators(t *testing.T) {
	src := `:= = != < <= > >= + - * ( ) , ;`
	wantTypes(t, src, []TokenType{
		ASSIGN, EQ, NEQ, LESS, LESS_EQ, GREATER, GREATER_EQ,
		PLUS, MINUS, MULT, LROUND, RROUND, COMMA, SEMI,
	})
}

func Test_Lexer_KeywordsVersusIdentifiers(t *testing.T) {
	src := `while whilex programs read ready`
	got := wantTypes(t, src, []TokenType{WHILE, ID, ID, READ, ID})
	if got[1].Lexeme != "whilex" || got[2].Lexeme != "programs" || got[4].Lexeme != "ready" {
		t.Fatalf("identifier lexemes wrong: %v", got)
	}
}

func Test_Lexer_LineComments(t *testing.T) {
	src := "-- a full-line comment\nread x -- trailing comment\nwrite y"
	got := wantTypes(t, src, []TokenType{READ, ID, WRITE, ID})
	if got[0].Line != 2 || got[2].Line != 3 {
		t.Fatalf("comment skipping broke line tracking: %v", got)
	}
}

func Test_Lexer_CommentDoesNotEatMinus(t *testing.T) {
	// a single '-' is subtraction; only '--' opens a comment
	wantTypes(t, `x - y`, []TokenType{ID, MINUS, ID})
}

func Test_Lexer_LineNumbers(t *testing.T) {
	src := "program\nint x;\nbegin\nwrite x\nend"
	got := toks(t, src)
	wantLines := []int{1, 2, 2, 2, 3, 4, 4, 5}
	for i, w := range wantLines {
		if got[i].Line != w {
			t.Fatalf("token %d (%s): want line %d, got %d", i, got[i].Lexeme, w, got[i].Line)
		}
	}
}

func Test_Lexer_TokenColumns(t *testing.T) {
	got := toks(t, "x := y")
	wantCols := []int{0, 2, 5}
	for i, w := range wantCols {
		if got[i].Col != w {
			t.Fatalf("token %d (%s): want col %d, got %d", i, got[i].Lexeme, w, got[i].Col)
		}
	}

	// columns stay exact across many identifier/integer tokens on one line
	got = toks(t, "abc := de + 12 * f")
	wantCols = []int{0, 4, 7, 10, 12, 15, 17}
	for i, w := range wantCols {
		if got[i].Col != w {
			t.Fatalf("token %d (%s): want col %d, got %d", i, got[i].Lexeme, w, got[i].Col)
		}
	}
}

func Test_Lexer_ColumnsResetAcrossLines(t *testing.T) {
	got := toks(t, "read x\nwrite y")
	// write/y sit on line 2 at cols 0 and 6
	if got[2].Line != 2 || got[2].Col != 0 {
		t.Fatalf("token %s: want 2:0, got %d:%d", got[2].Lexeme, got[2].Line, got[2].Col)
	}
	if got[3].Line != 2 || got[3].Col != 6 {
		t.Fatalf("token %s: want 2:6, got %d:%d", got[3].Lexeme, got[3].Line, got[3].Col)
	}
}

func Test_Lexer_StickyEOF(t *testing.T) {
	l := NewLexer("end")
	if err := l.Advance(); err != nil || l.Current().Type != END {
		t.Fatalf("want END, got %v (%v)", l.Current(), err)
	}
	for i := 0; i < 3; i++ {
		if err := l.Advance(); err != nil {
			t.Fatalf("Advance after end of input failed: %v", err)
		}
		if l.Current().Type != EOF {
			t.Fatalf("want permanent EOF, got %v", l.Current())
		}
	}
}

func Test_Lexer_UnexpectedCharacter(t *testing.T) {
	_, err := NewLexer("write $x").Scan()
	if err == nil {
		t.Fatalf("want lexical error")
	}
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %T", err)
	}
	if le.Line != 1 {
		t.Fatalf("want line 1, got %d", le.Line)
	}
}

func Test_Lexer_LoneColonAndBang(t *testing.T) {
	for _, src := range []string{"x : 1", "x ! 1"} {
		if _, err := NewLexer(src).Scan(); err == nil {
			t.Fatalf("source %q: want lexical error", src)
		}
	}
}

func Test_Lexer_IntegerBoundaries(t *testing.T) {
	got := toks(t, "2147483647")
	if got[0].Type != INTEGER || got[0].Value != 2147483647 {
		t.Fatalf("max int literal: %v", got[0])
	}

	for _, src := range []string{"2147483648", "99999999999999999999"} {
		_, err := NewLexer(src).Scan()
		if err == nil {
			t.Fatalf("source %q: want out-of-range error", src)
		}
		if !strings.Contains(err.Error(), "out of range") {
			t.Fatalf("source %q: wrong error: %v", src, err)
		}
	}
}

func Test_Lexer_MalformedIntegerSuffix(t *testing.T) {
	if _, err := NewLexer("12abc").Scan(); err == nil {
		t.Fatalf("want malformed-integer error")
	}
}

// lexer.go — tokenizer for Core source text.
package core

import (
	"fmt"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Punctuation
	SEMI   // ";"
	COMMA  // ","
	LROUND // "("
	RROUND // ")"

	// Operators
	ASSIGN     // ":="
	EQ         // "="
	NEQ        // "!="
	LESS       // "<"
	LESS_EQ    // "<="
	GREATER    // ">"
	GREATER_EQ // ">="
	PLUS       // "+"
	MINUS      // "-"
	MULT       // "*"

	// Literals & identifiers
	ID
	INTEGER

	// Keywords
	PROGRAM
	BEGIN
	END
	INT
	IF
	THEN
	ELSE
	WHILE
	LOOP
	READ
	WRITE
	NOT
	AND
	OR
)

// Token is a lexical token. Value holds the parsed integer for INTEGER tokens.
type Token struct {
	Type   TokenType
	Lexeme string
	Value  int64
	Line   int // 1-based
	Col    int // 0-based column within line
}

// keywords map
var keywords = map[string]TokenType{
	"program": PROGRAM,
	"begin":   BEGIN,
	"end":     END,
	"int":     INT,
	"if":      IF,
	"then":    THEN,
	"else":    ELSE,
	"while":   WHILE,
	"loop":    LOOP,
	"read":    READ,
	"write":   WRITE,
	"not":     NOT,
	"and":     AND,
	"or":      OR,
}

// tokenName maps token types to a printable name for diagnostics.
var tokenName = map[TokenType]string{
	EOF:        "end of input",
	SEMI:       "';'",
	COMMA:      "','",
	LROUND:     "'('",
	RROUND:     "')'",
	ASSIGN:     "':='",
	EQ:         "'='",
	NEQ:        "'!='",
	LESS:       "'<'",
	LESS_EQ:    "'<='",
	GREATER:    "'>'",
	GREATER_EQ: "'>='",
	PLUS:       "'+'",
	MINUS:      "'-'",
	MULT:       "'*'",
	ID:         "identifier",
	INTEGER:    "integer",
	PROGRAM:    "'program'",
	BEGIN:      "'begin'",
	END:        "'end'",
	INT:        "'int'",
	IF:         "'if'",
	THEN:       "'then'",
	ELSE:       "'else'",
	WHILE:      "'while'",
	LOOP:       "'loop'",
	READ:       "'read'",
	WRITE:      "'write'",
	NOT:        "'not'",
	AND:        "'and'",
	OR:         "'or'",
}

func (tt TokenType) String() string {
	if s, ok := tokenName[tt]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(tt))
}

// Lexer scans a Core source string into tokens, one at a time on demand.
// Once end of input is reached it keeps yielding the EOF token.
type Lexer struct {
	src   string
	start int // start index of current token
	cur   int // current index
	line  int // 1-based
	col   int // 0-based column within line

	// precise token start position
	tokStartLine int
	tokStartCol  int

	tok Token // most recently scanned token
}

// NewLexer creates a lexer positioned before the first token.
// Call Advance once to load it.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Current returns the most recently scanned token.
func (l *Lexer) Current() Token { return l.tok }

// Line returns the line of the current token.
func (l *Lexer) Line() int { return l.tok.Line }

// Advance scans the next token into Current. At end of input it yields a
// permanent EOF token and never fails again.
func (l *Lexer) Advance() error {
	tok, err := l.scanToken()
	if err != nil {
		return err
	}
	l.tok = tok
	return nil
}

// Scan tokenizes the entire source and returns all tokens, EOF included.
func (l *Lexer) Scan() ([]Token, error) {
	var out []Token
	for {
		if err := l.Advance(); err != nil {
			return nil, err
		}
		out = append(out, l.tok)
		if l.tok.Type == EOF {
			return out, nil
		}
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advanceByte() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

// rewindToStart backs the scanner up to the start of the current token,
// restoring the line/col counters recorded when the token began.
func (l *Lexer) rewindToStart() {
	l.cur = l.start
	l.line = l.tokStartLine
	l.col = l.tokStartCol
}

func (l *Lexer) makeToken(tt TokenType, val int64) Token {
	return Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Value:  val,
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	}
}

// skipWhitespaceAndComments eats spaces, tabs, newlines and "--" line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advanceByte()
		case '-':
			if b2, ok := l.peekN(1); ok && b2 == '-' {
				l.ignoreUntilNewline()
				continue
			}
			return
		default:
			return
		}
	}
}

// ignoreUntilNewline eats until '\n' or EOF.
func (l *Lexer) ignoreUntilNewline() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advanceByte()
	}
}

// helpers

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

// ----- errors -----

// LexError is a lexical failure with a 1-based line and 0-based column.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg}
}

// ----- scanners -----

// scanIdentifier parses [A-Za-z][A-Za-z0-9_]*
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advanceByte()
	}
	return l.src[l.start:l.cur]
}

// scanInteger parses a digit run (maximal munch) and range-checks it.
func (l *Lexer) scanInteger() (int64, error) {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advanceByte()
	}
	lex := l.src[l.start:l.cur]
	if b, ok := l.peek(); ok && isAlpha(b) {
		return 0, l.err(fmt.Sprintf("malformed integer literal %q", lex+string(b)))
	}
	if !IsWellFormedAndInRange(lex) {
		return 0, l.err(fmt.Sprintf("integer literal %s out of range", lex))
	}
	return ParseValidated(lex), nil
}

// ----- main scanner -----

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespaceAndComments()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.makeToken(EOF, 0), nil
	}

	ch, _ := l.advanceByte()

	// Single-char tokens & punctuation
	switch ch {
	case ';':
		return l.makeToken(SEMI, 0), nil
	case ',':
		return l.makeToken(COMMA, 0), nil
	case '(':
		return l.makeToken(LROUND, 0), nil
	case ')':
		return l.makeToken(RROUND, 0), nil
	case '+':
		return l.makeToken(PLUS, 0), nil
	case '-':
		return l.makeToken(MINUS, 0), nil
	case '*':
		return l.makeToken(MULT, 0), nil
	case '=':
		return l.makeToken(EQ, 0), nil
	}

	// Two-char operators and fallbacks
	switch ch {
	case ':':
		if b, ok := l.peek(); ok && b == '=' {
			l.advanceByte()
			return l.makeToken(ASSIGN, 0), nil
		}
		return Token{}, l.err("unexpected character ':' (did you mean ':='?)")
	case '!':
		if b, ok := l.peek(); ok && b == '=' {
			l.advanceByte()
			return l.makeToken(NEQ, 0), nil
		}
		return Token{}, l.err("unexpected character '!' (did you mean '!='?)")
	case '<':
		if b, ok := l.peek(); ok && b == '=' {
			l.advanceByte()
			return l.makeToken(LESS_EQ, 0), nil
		}
		return l.makeToken(LESS, 0), nil
	case '>':
		if b, ok := l.peek(); ok && b == '=' {
			l.advanceByte()
			return l.makeToken(GREATER_EQ, 0), nil
		}
		return l.makeToken(GREATER, 0), nil
	}

	// Integers
	if isDigit(ch) {
		l.rewindToStart()
		v, err := l.scanInteger()
		if err != nil {
			return Token{}, err
		}
		return l.makeToken(INTEGER, v), nil
	}

	// Identifiers / keywords
	if isAlpha(ch) {
		l.rewindToStart()
		lex := l.scanIdentifier()
		if tt, ok := keywords[lex]; ok {
			return l.makeToken(tt, 0), nil
		}
		return l.makeToken(ID, 0), nil
	}

	return Token{}, l.err(fmt.Sprintf("unexpected character: %q", ch))
}

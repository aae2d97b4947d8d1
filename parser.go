// parser.go — recursive-descent parser for Core.
//
// One method per grammar nonterminal, LL(1), no backtracking. Each rule
// either returns a fully-constructed, directly executable node or fails with
// a *ParseError; there is no resynchronization and no partial result. Rules
// keep no state besides the lexer position, so they compose freely.
//
// Grammar:
//
//	Program    := 'program' DeclSeq 'begin' StmtSeq 'end'
//	DeclSeq    := Decl (';' Decl)*        -- trailing ';' before 'begin' allowed
//	Decl       := 'int' IdList
//	IdList     := Id (',' Id)*
//	StmtSeq    := Stmt (';' Stmt)*        -- trailing ';' allowed
//	Stmt       := Assign | If | Loop | In | Out
//	Assign     := Id ':=' Expr
//	If         := 'if' Cond 'then' StmtSeq ('else' StmtSeq)?
//	Loop       := 'while' Cond 'loop' StmtSeq
//	In         := 'read' IdList
//	Out        := 'write' IdList
//	Cond       := OrCond
//	OrCond     := AndCond ('or' AndCond)*
//	AndCond    := NotCond ('and' NotCond)*
//	NotCond    := 'not' NotCond | Comp
//	Comp       := Factor compOp Factor    -- compOp ∈ != = > < >= <=
//	Expr       := Term (('+' | '-') Term)*
//	Term       := Factor ('*' Factor)*
//	Factor     := INTEGER | Id | '(' Expr ')'
//
// Identifier occurrences resolve through the symbol table as they are parsed,
// so every occurrence of a name in the finished tree shares one slot.
package core

import (
	"errors"
	"fmt"
)

// ParseError is a syntax failure with a 1-based line and 0-based column.
// Incomplete marks failures at end of input in interactive mode, which the
// REPL uses to keep prompting for more lines.
type ParseError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err is a parse failure caused by truncated
// input in interactive mode.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

// Parse parses a complete Core source string into an executable Program.
func Parse(src string) (*Program, error) {
	return parse(src, false)
}

// ParseInteractive parses in REPL-friendly mode: failures at end of input
// are marked Incomplete instead of being hard syntax errors.
func ParseInteractive(src string) (*Program, error) {
	return parse(src, true)
}

func parse(src string, interactive bool) (*Program, error) {
	lx := NewLexer(src)
	if err := lx.Advance(); err != nil {
		return nil, err
	}
	p := &parser{lx: lx, syms: NewSymbolTable(), interactive: interactive}
	prog, err := p.program()
	if err != nil {
		return nil, err
	}
	if p.cur().Type != EOF {
		return nil, p.fail(fmt.Sprintf("expected end of input after program, found %s", describe(p.cur())))
	}
	return prog, nil
}

type parser struct {
	lx          *Lexer
	syms        *SymbolTable
	interactive bool
}

// ----- token plumbing -----

func (p *parser) cur() Token { return p.lx.Current() }

func (p *parser) advance() error { return p.lx.Advance() }

// expect fails unless the current token has the wanted type, reporting the
// current line, the expected token and the actual one; on match it consumes
// the token and returns it.
func (p *parser) expect(tt TokenType) (Token, error) {
	got := p.cur()
	if got.Type != tt {
		return Token{}, p.fail(fmt.Sprintf("expected %s, found %s", tt, describe(got)))
	}
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return got, nil
}

func (p *parser) fail(msg string) error {
	got := p.cur()
	return &ParseError{
		Line:       got.Line,
		Col:        got.Col,
		Msg:        msg,
		Incomplete: p.interactive && got.Type == EOF,
	}
}

func describe(t Token) string {
	switch t.Type {
	case ID, INTEGER:
		return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
	default:
		return t.Type.String()
	}
}

// ----- grammar rules -----

func (p *parser) program() (*Program, error) {
	if _, err := p.expect(PROGRAM); err != nil {
		return nil, err
	}
	decls, err := p.declSeq()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(BEGIN); err != nil {
		return nil, err
	}
	stmts, err := p.stmtSeq()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(END); err != nil {
		return nil, err
	}
	return &Program{Decls: decls, Stmts: stmts}, nil
}

func (p *parser) declSeq() (*DeclSeq, error) {
	ds := &DeclSeq{}
	for {
		d, err := p.decl()
		if err != nil {
			return nil, err
		}
		ds.Decls = append(ds.Decls, d)
		if p.cur().Type != SEMI {
			return ds, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		// ';' before 'begin' terminates the sequence
		if p.cur().Type != INT {
			return ds, nil
		}
	}
}

func (p *parser) decl() (*Decl, error) {
	tok, err := p.expect(INT)
	if err != nil {
		return nil, err
	}
	ids, err := p.idList()
	if err != nil {
		return nil, err
	}
	return &Decl{Ids: ids, Line: tok.Line, Col: tok.Col}, nil
}

func (p *parser) idList() (*IdList, error) {
	il := &IdList{}
	for {
		id, err := p.identifier()
		if err != nil {
			return nil, err
		}
		il.Ids = append(il.Ids, id)
		if p.cur().Type != COMMA {
			return il, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

// identifier consumes an ID token and resolves it to its shared slot,
// creating the slot on the name's first occurrence anywhere in the program.
func (p *parser) identifier() (*Id, error) {
	tok, err := p.expect(ID)
	if err != nil {
		return nil, err
	}
	return &Id{Slot: p.syms.Lookup(tok.Lexeme), Line: tok.Line, Col: tok.Col}, nil
}

func startsStatement(tt TokenType) bool {
	switch tt {
	case ID, IF, WHILE, READ, WRITE:
		return true
	default:
		return false
	}
}

func (p *parser) stmtSeq() (*StmtSeq, error) {
	ss := &StmtSeq{}
	for {
		st, err := p.statement()
		if err != nil {
			return nil, err
		}
		ss.Stmts = append(ss.Stmts, st)
		if p.cur().Type != SEMI {
			return ss, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		// trailing ';' before 'end'/'else' terminates the sequence
		if !startsStatement(p.cur().Type) {
			return ss, nil
		}
	}
}

func (p *parser) statement() (Stmt, error) {
	switch p.cur().Type {
	case ID:
		return p.assign()
	case IF:
		return p.ifStmt()
	case WHILE:
		return p.loopStmt()
	case READ:
		return p.inStmt()
	case WRITE:
		return p.outStmt()
	default:
		return nil, p.fail(fmt.Sprintf("expected statement, found %s", describe(p.cur())))
	}
}

func (p *parser) assign() (*AssignStmt, error) {
	target, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &AssignStmt{Target: target, Value: value, Line: target.Line, Col: target.Col}, nil
}

func (p *parser) ifStmt() (*IfStmt, error) {
	tok, err := p.expect(IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(THEN); err != nil {
		return nil, err
	}
	then, err := p.stmtSeq()
	if err != nil {
		return nil, err
	}
	st := &IfStmt{Cond: cond, Then: then, Line: tok.Line, Col: tok.Col}
	if p.cur().Type == ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		els, err := p.stmtSeq()
		if err != nil {
			return nil, err
		}
		st.Else = els
	}
	return st, nil
}

func (p *parser) loopStmt() (*LoopStmt, error) {
	tok, err := p.expect(WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LOOP); err != nil {
		return nil, err
	}
	body, err := p.stmtSeq()
	if err != nil {
		return nil, err
	}
	return &LoopStmt{Cond: cond, Body: body, Line: tok.Line, Col: tok.Col}, nil
}

func (p *parser) inStmt() (*InStmt, error) {
	tok, err := p.expect(READ)
	if err != nil {
		return nil, err
	}
	ids, err := p.idList()
	if err != nil {
		return nil, err
	}
	return &InStmt{Ids: ids, Line: tok.Line, Col: tok.Col}, nil
}

func (p *parser) outStmt() (*OutStmt, error) {
	tok, err := p.expect(WRITE)
	if err != nil {
		return nil, err
	}
	ids, err := p.idList()
	if err != nil {
		return nil, err
	}
	return &OutStmt{Ids: ids, Line: tok.Line, Col: tok.Col}, nil
}

// ----- conditions: not > and > or, and/or left-associative -----

func (p *parser) condition() (*Cond, error) {
	return p.orCond()
}

func (p *parser) orCond() (*Cond, error) {
	left, err := p.andCond()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == OR {
		tok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.andCond()
		if err != nil {
			return nil, err
		}
		left = &Cond{Kind: CondOr, Left: left, Right: right, Line: tok.Line, Col: tok.Col}
	}
	return left, nil
}

func (p *parser) andCond() (*Cond, error) {
	left, err := p.notCond()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == AND {
		tok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.notCond()
		if err != nil {
			return nil, err
		}
		left = &Cond{Kind: CondAnd, Left: left, Right: right, Line: tok.Line, Col: tok.Col}
	}
	return left, nil
}

func (p *parser) notCond() (*Cond, error) {
	if p.cur().Type == NOT {
		tok := p.cur()
		if err := p.advance(); err != nil {
			return nil, err
		}
		sub, err := p.notCond()
		if err != nil {
			return nil, err
		}
		return &Cond{Kind: CondNot, Left: sub, Line: tok.Line, Col: tok.Col}, nil
	}
	comp, err := p.composite()
	if err != nil {
		return nil, err
	}
	return &Cond{Kind: CondComp, Comp: comp, Line: comp.Line, Col: comp.Col}, nil
}

var compOps = map[TokenType]CompOp{
	NEQ:        CompNeq,
	EQ:         CompEq,
	GREATER:    CompGreater,
	LESS:       CompLess,
	GREATER_EQ: CompGreaterEq,
	LESS_EQ:    CompLessEq,
}

func (p *parser) composite() (*Comp, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	tok := p.cur()
	op, ok := compOps[tok.Type]
	if !ok {
		return nil, p.fail(fmt.Sprintf("expected comparison operator, found %s", describe(tok)))
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.factor()
	if err != nil {
		return nil, err
	}
	return &Comp{Left: left, Op: op, Right: right, Line: tok.Line, Col: tok.Col}, nil
}

// ----- expressions -----

func (p *parser) expression() (*Expr, error) {
	start := p.cur()
	first, err := p.term()
	if err != nil {
		return nil, err
	}
	e := &Expr{Terms: []*Term{first}, Line: start.Line, Col: start.Col}
	for p.cur().Type == PLUS || p.cur().Type == MINUS {
		op := p.cur().Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		e.Ops = append(e.Ops, op)
		e.Terms = append(e.Terms, t)
	}
	return e, nil
}

// term parses Factor ('*' Factor)*: multiplication is written with an
// explicit '*' and is left-associative; two adjacent factors with no
// operator between them are a syntax error.
func (p *parser) term() (*Term, error) {
	start := p.cur()
	first, err := p.factor()
	if err != nil {
		return nil, err
	}
	t := &Term{Factors: []Factor{first}, Line: start.Line, Col: start.Col}
	for p.cur().Type == MULT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := p.factor()
		if err != nil {
			return nil, err
		}
		t.Factors = append(t.Factors, f)
	}
	return t, nil
}

func (p *parser) factor() (Factor, error) {
	tok := p.cur()
	switch tok.Type {
	case INTEGER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &IntLit{Value: tok.Value, Line: tok.Line, Col: tok.Col}, nil
	case ID:
		return p.identifier()
	case LROUND:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RROUND); err != nil {
			return nil, err
		}
		return &Paren{Inner: inner, Line: tok.Line, Col: tok.Col}, nil
	default:
		return nil, p.fail(fmt.Sprintf("expected integer, identifier, or '(', found %s", describe(tok)))
	}
}

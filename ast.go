// ast.go — the Core syntax tree and its capability interfaces.
//
// Nodes are built once by the parser and never restructured. Each grammar
// variant implements exactly the capabilities its position requires:
//
//   - Node        print yourself at an indent level (every node)
//   - Evaluable   produce a value; int64 for arithmetic, bool for conditions
//   - Assignable  additionally accept a stored value (identifiers only)
//   - Executable  perform a side effect against the runtime
//
// Evaluation and execution methods live in eval.go; this file holds the node
// shapes and their printed form. Printed output is canonical Core source and
// re-parses to a program with identical behavior.
package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is the base capability: render at an indent level to a sink.
type Node interface {
	Print(indent int, w io.Writer)
}

// Evaluable is a node producing a value when evaluated. Evaluation never
// mutates the tree; it may observe identifier slots.
type Evaluable[T any] interface {
	Node
	Evaluate() (T, error)
}

// Assignable is an evaluable node that can also store a value.
type Assignable interface {
	Evaluable[int64]
	Assign(v int64) error
}

// Executable is a node run for its side effects.
type Executable interface {
	Node
	Execute(rt *Runtime) error
}

// Stmt is any of the five statement kinds.
type Stmt interface {
	Executable
}

// Factor is an integer literal, identifier reference, or parenthesized
// expression.
type Factor interface {
	Evaluable[int64]
}

const indentStep = "  "

func pad(w io.Writer, indent int) {
	io.WriteString(w, strings.Repeat(indentStep, indent))
}

// ----- program & declarations -----

// Program is the tree root: declarations first, then statements.
type Program struct {
	Decls *DeclSeq
	Stmts *StmtSeq
}

func (p *Program) Print(indent int, w io.Writer) {
	pad(w, indent)
	io.WriteString(w, "program\n")
	p.Decls.Print(indent+1, w)
	pad(w, indent)
	io.WriteString(w, "begin\n")
	p.Stmts.Print(indent+1, w)
	pad(w, indent)
	io.WriteString(w, "end\n")
}

// DeclSeq is an ordered run of declarations.
type DeclSeq struct {
	Decls []*Decl
}

func (d *DeclSeq) Print(indent int, w io.Writer) {
	for _, dec := range d.Decls {
		dec.Print(indent, w)
	}
}

// Decl declares a list of integer identifiers.
type Decl struct {
	Ids  *IdList
	Line int
	Col  int
}

func (d *Decl) Print(indent int, w io.Writer) {
	pad(w, indent)
	io.WriteString(w, "int ")
	d.Ids.Print(indent, w)
	io.WriteString(w, ";\n")
}

// IdList is a comma-separated run of identifier references.
type IdList struct {
	Ids []*Id
}

func (il *IdList) Print(indent int, w io.Writer) {
	for i, id := range il.Ids {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		id.Print(indent, w)
	}
}

// ----- statements -----

// StmtSeq is an ordered run of statements, printed one per line with ';'
// separators.
type StmtSeq struct {
	Stmts []Stmt
}

func (s *StmtSeq) Print(indent int, w io.Writer) {
	for i, st := range s.Stmts {
		st.Print(indent, w)
		switch st.(type) {
		case *IfStmt, *LoopStmt:
			// block statements end with their nested sequence's newline,
			// and the grammar puts them last in their sequence
		default:
			if i < len(s.Stmts)-1 {
				io.WriteString(w, ";")
			}
			io.WriteString(w, "\n")
		}
	}
}

// AssignStmt stores an expression value into its target slot.
type AssignStmt struct {
	Target *Id
	Value  *Expr
	Line   int
	Col    int
}

func (a *AssignStmt) Print(indent int, w io.Writer) {
	pad(w, indent)
	a.Target.Print(indent, w)
	io.WriteString(w, " := ")
	a.Value.Print(indent, w)
}

// IfStmt executes exactly one of its branches. Else may be nil.
type IfStmt struct {
	Cond *Cond
	Then *StmtSeq
	Else *StmtSeq
	Line int
	Col  int
}

func (s *IfStmt) Print(indent int, w io.Writer) {
	pad(w, indent)
	io.WriteString(w, "if ")
	s.Cond.Print(indent, w)
	io.WriteString(w, " then\n")
	s.Then.Print(indent+1, w)
	if s.Else != nil {
		pad(w, indent)
		io.WriteString(w, "else\n")
		s.Else.Print(indent+1, w)
	}
}

// LoopStmt re-evaluates its condition before every iteration. There is no
// iteration cap; an always-true condition loops forever.
type LoopStmt struct {
	Cond *Cond
	Body *StmtSeq
	Line int
	Col  int
}

func (s *LoopStmt) Print(indent int, w io.Writer) {
	pad(w, indent)
	io.WriteString(w, "while ")
	s.Cond.Print(indent, w)
	io.WriteString(w, " loop\n")
	s.Body.Print(indent+1, w)
}

// InStmt reads one integer token per identifier from the runtime input.
type InStmt struct {
	Ids  *IdList
	Line int
	Col  int
}

func (s *InStmt) Print(indent int, w io.Writer) {
	pad(w, indent)
	io.WriteString(w, "read ")
	s.Ids.Print(indent, w)
}

// OutStmt writes each identifier's stored value to the runtime output.
type OutStmt struct {
	Ids  *IdList
	Line int
	Col  int
}

func (s *OutStmt) Print(indent int, w io.Writer) {
	pad(w, indent)
	io.WriteString(w, "write ")
	s.Ids.Print(indent, w)
}

// ----- conditions -----

// CondKind selects the Cond variant.
type CondKind int

const (
	CondComp CondKind = iota // regular: delegate to Comp
	CondNot                  // logical negation of Left
	CondAnd                  // Left and Right
	CondOr                   // Left or Right
)

// Cond is a boolean condition. CondComp uses Comp; CondNot uses Left;
// CondAnd/CondOr use Left and Right.
type Cond struct {
	Kind  CondKind
	Comp  *Comp
	Left  *Cond
	Right *Cond
	Line  int
	Col   int
}

func (c *Cond) Print(indent int, w io.Writer) {
	switch c.Kind {
	case CondComp:
		c.Comp.Print(indent, w)
	case CondNot:
		io.WriteString(w, "not ")
		c.Left.Print(indent, w)
	case CondAnd:
		c.Left.Print(indent, w)
		io.WriteString(w, " and ")
		c.Right.Print(indent, w)
	case CondOr:
		c.Left.Print(indent, w)
		io.WriteString(w, " or ")
		c.Right.Print(indent, w)
	}
}

// CompOp is a comparison operator.
type CompOp int

const (
	CompNeq CompOp = iota
	CompEq
	CompGreater
	CompLess
	CompGreaterEq
	CompLessEq
)

func (op CompOp) String() string {
	switch op {
	case CompNeq:
		return "!="
	case CompEq:
		return "="
	case CompGreater:
		return ">"
	case CompLess:
		return "<"
	case CompGreaterEq:
		return ">="
	case CompLessEq:
		return "<="
	}
	return "?"
}

// Comp compares two factors.
type Comp struct {
	Left  Factor
	Op    CompOp
	Right Factor
	Line  int
	Col   int
}

func (c *Comp) Print(indent int, w io.Writer) {
	c.Left.Print(indent, w)
	fmt.Fprintf(w, " %s ", c.Op)
	c.Right.Print(indent, w)
}

// ----- expressions -----

// Expr folds its terms left to right. Ops[i] joins Terms[i] and Terms[i+1]
// and is PLUS or MINUS.
type Expr struct {
	Terms []*Term
	Ops   []TokenType
	Line  int
	Col   int
}

func (e *Expr) Print(indent int, w io.Writer) {
	for i, t := range e.Terms {
		if i > 0 {
			if e.Ops[i-1] == PLUS {
				io.WriteString(w, " + ")
			} else {
				io.WriteString(w, " - ")
			}
		}
		t.Print(indent, w)
	}
}

// Term multiplies its factors left to right.
type Term struct {
	Factors []Factor
	Line    int
	Col     int
}

func (t *Term) Print(indent int, w io.Writer) {
	for i, f := range t.Factors {
		if i > 0 {
			io.WriteString(w, " * ")
		}
		f.Print(indent, w)
	}
}

// ----- factors -----

// IntLit is an integer literal, range-checked at lex time.
type IntLit struct {
	Value int64
	Line  int
	Col   int
}

func (n *IntLit) Print(indent int, w io.Writer) {
	io.WriteString(w, strconv.FormatInt(n.Value, 10))
}

// Id is one occurrence of an identifier. All occurrences of a name share one
// slot, so assignment through any occurrence is visible through every other.
type Id struct {
	Slot *Slot
	Line int
	Col  int
}

func (id *Id) Print(indent int, w io.Writer) {
	io.WriteString(w, id.Slot.Name)
}

// Paren is a parenthesized expression factor.
type Paren struct {
	Inner *Expr
	Line  int
	Col   int
}

func (p *Paren) Print(indent int, w io.Writer) {
	io.WriteString(w, "(")
	p.Inner.Print(indent, w)
	io.WriteString(w, ")")
}

// capability checks
var (
	_ Executable = (*Program)(nil)
	_ Executable = (*DeclSeq)(nil)
	_ Executable = (*Decl)(nil)
	_ Executable = (*StmtSeq)(nil)
	_ Stmt       = (*AssignStmt)(nil)
	_ Stmt       = (*IfStmt)(nil)
	_ Stmt       = (*LoopStmt)(nil)
	_ Stmt       = (*InStmt)(nil)
	_ Stmt       = (*OutStmt)(nil)

	_ Evaluable[bool] = (*Cond)(nil)
	_ Evaluable[bool] = (*Comp)(nil)

	_ Evaluable[int64] = (*Expr)(nil)
	_ Evaluable[int64] = (*Term)(nil)
	_ Factor           = (*IntLit)(nil)
	_ Factor           = (*Paren)(nil)
	_ Assignable       = (*Id)(nil)
)

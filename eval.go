// eval.go — execution and evaluation semantics for the Core tree.
//
// The tree executes directly, once, top to bottom: Program runs its
// declaration sequence and then its statement sequence. The only mutable
// state is the set of identifier slots; the Runtime supplies the input token
// stream for `read` and the output sink for `write`. The first failure
// anywhere aborts the run as a *RuntimeError.
package core

import (
	"bufio"
	"fmt"
	"io"
)

// Runtime carries the I/O channels of one execution.
type Runtime struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewRuntime wraps in as a whitespace-delimited token stream for `read`
// statements and out as the sink for `write` statements.
func NewRuntime(in io.Reader, out io.Writer) *Runtime {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Runtime{in: sc, out: out}
}

// readToken returns the next input token. A false result means the stream
// ended; inErr then reports whether it ended in an I/O failure rather than
// normal exhaustion.
func (rt *Runtime) readToken() (string, bool) {
	if !rt.in.Scan() {
		return "", false
	}
	return rt.in.Text(), true
}

func (rt *Runtime) inErr() error { return rt.in.Err() }

// RuntimeError represents an execution-time failure with a source location.
// Line and Col are 1-based.
type RuntimeError struct {
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func rtErr(line, col int, format string, args ...any) error {
	return &RuntimeError{Line: line, Col: col + 1, Msg: fmt.Sprintf(format, args...)}
}

// ----- top-level entry -----

// Run parses src and executes it, reading `read` input from in and writing
// `write` output to out. Errors are returned with a caret-annotated snippet.
func Run(src string, in io.Reader, out io.Writer) error {
	return RunNamed("", src, in, out)
}

// RunNamed is Run with a source name (usually the file path) included in
// error headers.
func RunNamed(name, src string, in io.Reader, out io.Writer) error {
	prog, err := Parse(src)
	if err != nil {
		return WrapErrorWithName(err, name, src)
	}
	if err := prog.Execute(NewRuntime(in, out)); err != nil {
		return WrapErrorWithName(err, name, src)
	}
	return nil
}

// ----- program & declarations -----

// Execute runs the declaration sequence, then the statement sequence,
// exactly once, in that order.
func (p *Program) Execute(rt *Runtime) error {
	if err := p.Decls.Execute(rt); err != nil {
		return err
	}
	return p.Stmts.Execute(rt)
}

func (d *DeclSeq) Execute(rt *Runtime) error {
	for _, dec := range d.Decls {
		if err := dec.Execute(rt); err != nil {
			return err
		}
	}
	return nil
}

// Execute marks each identifier declared, failing on a duplicate.
func (d *Decl) Execute(rt *Runtime) error {
	for _, id := range d.Ids.Ids {
		if id.Slot.Declared {
			return rtErr(id.Line, id.Col, "duplicate declaration of '%s'", id.Slot.Name)
		}
		id.Slot.Declared = true
	}
	return nil
}

// ----- statements -----

func (s *StmtSeq) Execute(rt *Runtime) error {
	for _, st := range s.Stmts {
		if err := st.Execute(rt); err != nil {
			return err
		}
	}
	return nil
}

func (a *AssignStmt) Execute(rt *Runtime) error {
	v, err := a.Value.Evaluate()
	if err != nil {
		return err
	}
	return a.Target.Assign(v)
}

func (s *IfStmt) Execute(rt *Runtime) error {
	b, err := s.Cond.Evaluate()
	if err != nil {
		return err
	}
	if b {
		return s.Then.Execute(rt)
	}
	if s.Else != nil {
		return s.Else.Execute(rt)
	}
	return nil
}

func (s *LoopStmt) Execute(rt *Runtime) error {
	for {
		b, err := s.Cond.Evaluate()
		if err != nil {
			return err
		}
		if !b {
			return nil
		}
		if err := s.Body.Execute(rt); err != nil {
			return err
		}
	}
}

// Execute reads one integer token per identifier, in list order. Each token
// must be a well-formed, in-range integer.
func (s *InStmt) Execute(rt *Runtime) error {
	for _, id := range s.Ids.Ids {
		if !id.Slot.Declared {
			return rtErr(id.Line, id.Col, "undeclared variable '%s'", id.Slot.Name)
		}
		tok, ok := rt.readToken()
		if !ok {
			if err := rt.inErr(); err != nil {
				return rtErr(id.Line, id.Col, "reading input for '%s': %v", id.Slot.Name, err)
			}
			return rtErr(id.Line, id.Col, "input exhausted while reading '%s'", id.Slot.Name)
		}
		if !IsWellFormedAndInRange(tok) {
			return rtErr(id.Line, id.Col, "malformed or out-of-range input integer %q for '%s'", tok, id.Slot.Name)
		}
		if err := id.Assign(ParseValidated(tok)); err != nil {
			return err
		}
	}
	return nil
}

// Execute writes each identifier's stored value, one per line.
func (s *OutStmt) Execute(rt *Runtime) error {
	for _, id := range s.Ids.Ids {
		v, err := id.Evaluate()
		if err != nil {
			return err
		}
		fmt.Fprintln(rt.out, v)
	}
	return nil
}

// ----- conditions -----

// Evaluate computes the condition. And/or evaluate both operands, left
// before right, with no short-circuit.
func (c *Cond) Evaluate() (bool, error) {
	switch c.Kind {
	case CondComp:
		return c.Comp.Evaluate()
	case CondNot:
		b, err := c.Left.Evaluate()
		if err != nil {
			return false, err
		}
		return !b, nil
	case CondAnd, CondOr:
		l, err := c.Left.Evaluate()
		if err != nil {
			return false, err
		}
		r, err := c.Right.Evaluate()
		if err != nil {
			return false, err
		}
		if c.Kind == CondAnd {
			return l && r, nil
		}
		return l || r, nil
	}
	return false, rtErr(c.Line, c.Col, "invalid condition")
}

func (c *Comp) Evaluate() (bool, error) {
	l, err := c.Left.Evaluate()
	if err != nil {
		return false, err
	}
	r, err := c.Right.Evaluate()
	if err != nil {
		return false, err
	}
	switch c.Op {
	case CompNeq:
		return l != r, nil
	case CompEq:
		return l == r, nil
	case CompGreater:
		return l > r, nil
	case CompLess:
		return l < r, nil
	case CompGreaterEq:
		return l >= r, nil
	case CompLessEq:
		return l <= r, nil
	}
	return false, rtErr(c.Line, c.Col, "invalid comparison operator")
}

// ----- expressions -----

// Evaluate folds terms left to right applying +/-. Every intermediate and
// the final result must stay in the representable range.
func (e *Expr) Evaluate() (int64, error) {
	acc, err := e.Terms[0].Evaluate()
	if err != nil {
		return 0, err
	}
	for i, op := range e.Ops {
		v, err := e.Terms[i+1].Evaluate()
		if err != nil {
			return 0, err
		}
		if op == PLUS {
			acc += v
		} else {
			acc -= v
		}
		if !IsValidInRange(acc) {
			return 0, rtErr(e.Line, e.Col, "arithmetic overflow: %d is out of the representable range", acc)
		}
	}
	return acc, nil
}

// Evaluate multiplies factors left to right with the same range check on
// every intermediate result.
func (t *Term) Evaluate() (int64, error) {
	acc, err := t.Factors[0].Evaluate()
	if err != nil {
		return 0, err
	}
	for _, f := range t.Factors[1:] {
		v, err := f.Evaluate()
		if err != nil {
			return 0, err
		}
		acc *= v
		if !IsValidInRange(acc) {
			return 0, rtErr(t.Line, t.Col, "arithmetic overflow: %d is out of the representable range", acc)
		}
	}
	return acc, nil
}

// ----- factors -----

func (n *IntLit) Evaluate() (int64, error) { return n.Value, nil }

// Evaluate returns the stored value; the identifier must be declared and
// must have been assigned or read first.
func (id *Id) Evaluate() (int64, error) {
	if !id.Slot.Declared {
		return 0, rtErr(id.Line, id.Col, "undeclared variable '%s'", id.Slot.Name)
	}
	if !id.Slot.HasValue {
		return 0, rtErr(id.Line, id.Col, "variable '%s' used before a value was assigned", id.Slot.Name)
	}
	return id.Slot.Value, nil
}

// Assign stores v into the shared slot; the identifier must be declared.
func (id *Id) Assign(v int64) error {
	if !id.Slot.Declared {
		return rtErr(id.Line, id.Col, "undeclared variable '%s'", id.Slot.Name)
	}
	id.Slot.Value = v
	id.Slot.HasValue = true
	return nil
}

func (p *Paren) Evaluate() (int64, error) { return p.Inner.Evaluate() }

// interpreter.go — the public API surface: parse a program and run it
// against a fresh root environment.
//
// Grounded on the teacher's own interpreter.go (the thin public entry point
// sitting above lexer/parser/exec internals, returning a plain Go error
// rather than panicking across the package boundary).
package mython

import "io"

// Interpreter runs Mython programs against a persistent root environment
// and output sink, so a REPL can evaluate one statement at a time while
// keeping prior bindings alive.
type Interpreter struct {
	Env *Env
	Ctx Context
}

// NewInterpreter returns an interpreter with a fresh root environment
// writing to out.
func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{Env: NewEnv(), Ctx: NewContext(out)}
}

// Run parses src and executes it against the interpreter's root
// environment. The program runs as one Compound, so a successful Run always
// yields None; see EvalStatement for per-statement results, which the REPL
// uses.
func (in *Interpreter) Run(src string) (Value, error) {
	prog, err := ParseProgram(src)
	if err != nil {
		return Value{}, err
	}
	return runGuarded(prog, in.Env, in.Ctx)
}

// EvalStatement parses src as a single statement (used by the REPL, where
// each accepted line is independently parsed and evaluated, and the caller
// wants that one statement's own result rather than Compound's constant
// None) and executes it.
func (in *Interpreter) EvalStatement(src string) (Value, error) {
	p := NewParser(src)
	if p.cur.Type == EOF {
		return None, nil
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return Value{}, err
	}
	if p.cur.Type != EOF {
		return Value{}, &ParseError{Line: p.cur.Line, Col: p.cur.Col, Msg: "unexpected trailing input"}
	}
	return runGuarded(stmt, in.Env, in.Ctx)
}

// runGuarded executes a top-level statement, converting a return signal
// that escapes every method body (a `return` outside any method, which has
// no meaning at the top level) into an ordinary error instead of letting
// the panic cross the package boundary.
func runGuarded(stmt Statement, env *Env, ctx Context) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(controlReturn); ok {
				err = newNameError("return used outside a method body")
				return
			}
			panic(r)
		}
	}()
	return stmt.Execute(env, ctx)
}

// ast.go — the AST vocabulary: one Go type per node variant, each carrying
// exactly the fields its evaluation needs. Execution semantics live in
// eval_exec.go, mirroring the teacher's own split between node declarations
// and the exec methods that walk them.
package mython

// Statement is the evaluator's uniform node contract: every AST node
// executes against a closure and a context to yield a value.
type Statement interface {
	Execute(env *Env, ctx Context) (Value, error)
}

// --- literals -----------------------------------------------------------

// NumberLiteral is a constant Number.
type NumberLiteral struct{ Value int64 }

// StringLiteral is a constant String.
type StringLiteral struct{ Value string }

// BoolLiteral is a constant Bool.
type BoolLiteral struct{ Value bool }

// NoneLiteral is the constant None.
type NoneLiteral struct{}

// --- names and fields --------------------------

// Assignment implements "x = E": target is a plain (undotted) name in the
// local closure.
type Assignment struct {
	Target string
	Value  Statement
}

// VariableValue implements a dotted read "a.b.c…": Path[0] is looked up in
// the closure; each further segment dereferences a field of the preceding
// ClassInstance.
type VariableValue struct {
	Path []string
}

// FieldAssignment implements "obj.f = E": Object resolves (via VariableValue
// semantics) to a ClassInstance; Field is stored in its field closure.
type FieldAssignment struct {
	Object Statement // a VariableValue naming the instance (or a dotted prefix of one)
	Field  string
	Value  Statement
}

// --- output -------------------------------------------------------

// Print evaluates Args in order and writes them space-separated, newline
// terminated.
type Print struct {
	Args []Statement
}

// --- arithmetic ----------------------------------------------------

// ArithOp names a binary arithmetic operator.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

// Arith implements Add/Sub/Mult/Div: both-Number arithmetic, both-String
// concatenation for Add, or a left-hand __add__ hook for Add.
type Arith struct {
	Op    ArithOp
	Left  Statement
	Right Statement
}

// --- logical operators --------------------------------------------

// Or implements short-circuit "L or R".
type Or struct{ Left, Right Statement }

// And implements short-circuit "L and R".
type And struct{ Left, Right Statement }

// Not implements "not A".
type Not struct{ Operand Statement }

// --- comparison ----------------------------------------------------

// Comparator is one of Equal/NotEqual/Less/Greater/LessOrEqual/GreaterOrEqual
// from compare.go.
type Comparator func(l, r Value, ctx Context) (bool, error)

// Comparison evaluates both sides and applies Cmp, wrapping the result as a
// Bool.
type Comparison struct {
	Cmp   Comparator
	Left  Statement
	Right Statement
}

// --- compound statements and return -------------------------------

// Compound executes its children in source order; its own result is always
// None regardless of what the children yielded.
type Compound struct {
	Stmts []Statement
}

// Return raises the return signal (control.go's controlReturn) carrying the
// evaluated Value, instead of yielding normally.
type Return struct {
	Value Statement
}

// --- calls and instantiation -----------------------------

// MethodCall implements "obj.m(args…)": Object must evaluate to a
// ClassInstance.
type MethodCall struct {
	Object Statement
	Method string
	Args   []Statement
}

// NewInstance implements instantiating ClassName (a bare identifier call at
// the head of a postfix chain): builds a fresh instance and, if __init__
// exists at the given arity, evaluates Args and calls it, discarding its
// result.
type NewInstance struct {
	ClassName string
	Args      []Statement
}

// --- class definition ---------------------------------------------

// ClassDefinition binds a new Class value under Name in the enclosing
// closure. Parent, if non-empty, names an already-bound class to inherit
// from.
type ClassDefinition struct {
	Name    string
	Parent  string
	Methods []*Method
}

// --- conditional ----------------------------------------------------

// IfElse evaluates Cond under IsTrue and branches; Else may be nil.
type IfElse struct {
	Cond Statement
	Then Statement
	Else Statement
}

// --- stringify ------------------------------------------------------

// Stringify implements "str(x)": pipes x's Print output through a buffer and
// wraps it as a String.
type Stringify struct {
	Operand Statement
}

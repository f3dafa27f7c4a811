// eval_exec.go — Execute implementations for every ast.go node.
//
// Grounded on the teacher's own exec-loop split (interpreter_exec.go):
// declarations live in one file, the walk that interprets them in another.
// Faults are always returned as a Go error (never panicked — see control.go
// for the one exception, the return signal).
package mython

import "io"

func (n *NumberLiteral) Execute(env *Env, ctx Context) (Value, error) { return Number(n.Value), nil }
func (n *StringLiteral) Execute(env *Env, ctx Context) (Value, error) { return Str(n.Value), nil }
func (n *BoolLiteral) Execute(env *Env, ctx Context) (Value, error)   { return Bool(n.Value), nil }
func (n *NoneLiteral) Execute(env *Env, ctx Context) (Value, error)   { return None, nil }

// Execute stores the evaluated value under the local closure only.
func (n *Assignment) Execute(env *Env, ctx Context) (Value, error) {
	v, err := n.Value.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	env.Define(n.Target, v)
	return v, nil
}

// Execute walks Path, dereferencing instance fields after the first
// segment.
func (n *VariableValue) Execute(env *Env, ctx Context) (Value, error) {
	v, ok := env.Get(n.Path[0])
	if !ok {
		return Value{}, newNameError("name %q is not defined", n.Path[0])
	}
	for _, seg := range n.Path[1:] {
		if v.Kind != KindInstance {
			return Value{}, newNameError("cannot access field %q of a non-instance value", seg)
		}
		ins := v.Instance
		v, ok = ins.Fields.Get(seg)
		if !ok {
			return Value{}, newNameError("instance of %s has no field %q", ins.Class.Name, seg)
		}
	}
	return v, nil
}

// Execute resolves Object to a ClassInstance and stores Field in its field
// closure.
func (n *FieldAssignment) Execute(env *Env, ctx Context) (Value, error) {
	obj, err := n.Object.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	if obj.Kind != KindInstance {
		return Value{}, newNameError("cannot assign field %q of a non-instance value", n.Field)
	}
	v, err := n.Value.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	obj.Instance.Fields.Define(n.Field, v)
	return v, nil
}

// Execute evaluates each argument in order, printing them space-separated
// with a trailing newline.
func (n *Print) Execute(env *Env, ctx Context) (Value, error) {
	out := ctx.Output()
	for i, arg := range n.Args {
		if i > 0 {
			if _, err := io.WriteString(out, " "); err != nil {
				return Value{}, err
			}
		}
		v, err := arg.Execute(env, ctx)
		if err != nil {
			return Value{}, err
		}
		if err := v.Print(out, ctx); err != nil {
			return Value{}, err
		}
	}
	_, err := io.WriteString(out, "\n")
	return None, err
}

// Execute evaluates a binary arithmetic node. Division by zero on the right
// operand is checked before either operand's type, so "s" / 0 still raises
// DivByZero rather than a type mismatch.
func (n *Arith) Execute(env *Env, ctx Context) (Value, error) {
	l, err := n.Left.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	r, err := n.Right.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}

	if n.Op == OpDiv && r.Kind == KindNumber && r.Num == 0 {
		return Value{}, newTypeError(TypeErrDivByZero, "division by zero")
	}

	if n.Op == OpAdd {
		switch {
		case l.Kind == KindNumber && r.Kind == KindNumber:
			return Number(l.Num + r.Num), nil
		case l.Kind == KindString && r.Kind == KindString:
			return Str(l.Str + r.Str), nil
		case l.Kind == KindInstance && l.Instance.HasMethod(methodAdd, 1):
			return l.Instance.Call(methodAdd, []Value{r}, ctx)
		default:
			return Value{}, newTypeError(TypeErrGeneric, "cannot add these operands")
		}
	}

	if l.Kind != KindNumber || r.Kind != KindNumber {
		return Value{}, newTypeError(TypeErrGeneric, "operands must be numbers")
	}
	switch n.Op {
	case OpSub:
		return Number(l.Num - r.Num), nil
	case OpMul:
		return Number(l.Num * r.Num), nil
	case OpDiv:
		return Number(l.Num / r.Num), nil
	default:
		return Value{}, newTypeError(TypeErrGeneric, "unknown arithmetic operator")
	}
}

// Execute short-circuits: if the left operand is true, the right operand is
// never evaluated.
func (n *Or) Execute(env *Env, ctx Context) (Value, error) {
	l, err := n.Left.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	if IsTrue(l) {
		return Bool(true), nil
	}
	r, err := n.Right.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	return Bool(IsTrue(r)), nil
}

// Execute short-circuits: if the left operand is false, the right operand
// is never evaluated.
func (n *And) Execute(env *Env, ctx Context) (Value, error) {
	l, err := n.Left.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	if !IsTrue(l) {
		return Bool(false), nil
	}
	r, err := n.Right.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	return Bool(IsTrue(r)), nil
}

// Execute negates the operand's truthiness.
func (n *Not) Execute(env *Env, ctx Context) (Value, error) {
	v, err := n.Operand.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	return Bool(!IsTrue(v)), nil
}

// Execute evaluates both sides, applies Cmp, and wraps the result as Bool.
func (n *Comparison) Execute(env *Env, ctx Context) (Value, error) {
	l, err := n.Left.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	r, err := n.Right.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	b, err := n.Cmp(l, r, ctx)
	if err != nil {
		return Value{}, err
	}
	return Bool(b), nil
}

// Execute runs children in order; the result is always None regardless of
// what they yielded.
func (n *Compound) Execute(env *Env, ctx Context) (Value, error) {
	for _, s := range n.Stmts {
		if _, err := s.Execute(env, ctx); err != nil {
			return Value{}, err
		}
	}
	return None, nil
}

// Execute raises the return signal instead of yielding normally. Recovered
// by execMethodBody (control.go), or by runGuarded outside any method.
func (n *Return) Execute(env *Env, ctx Context) (Value, error) {
	v, err := n.Value.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	panic(controlReturn{value: v})
}

// Execute evaluates Object, which must be a ClassInstance, then dispatches
// the named method with the evaluated arguments.
func (n *MethodCall) Execute(env *Env, ctx Context) (Value, error) {
	obj, err := n.Object.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	if obj.Kind != KindInstance {
		return Value{}, newNameError("cannot call method %q on a non-instance value", n.Method)
	}
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := a.Execute(env, ctx)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return obj.Instance.Call(n.Method, args, ctx)
}

// Execute builds a fresh instance and, if __init__ exists at the given
// arity, runs it and discards its result.
func (n *NewInstance) Execute(env *Env, ctx Context) (Value, error) {
	cv, ok := env.Get(n.ClassName)
	if !ok {
		return Value{}, newNameError("class %q is not defined", n.ClassName)
	}
	if cv.Kind != KindClass {
		return Value{}, newTypeError(TypeErrGeneric, "%q is not a class", n.ClassName)
	}

	ins := NewRawInstance(cv.Class)
	if ins.HasMethod(methodInit, len(n.Args)) {
		args := make([]Value, len(n.Args))
		for i, a := range n.Args {
			v, err := a.Execute(env, ctx)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		if _, err := ins.Call(methodInit, args, ctx); err != nil {
			return Value{}, err
		}
	}
	return InstanceVal(ins), nil
}

// Execute builds the class from Name, Parent, and Methods and binds it in
// env, registering it with ctx when the host supports it.
func (n *ClassDefinition) Execute(env *Env, ctx Context) (Value, error) {
	var parent *Class
	if n.Parent != "" {
		pv, ok := env.Get(n.Parent)
		if !ok {
			return Value{}, newNameError("parent class %q is not defined", n.Parent)
		}
		if pv.Kind != KindClass {
			return Value{}, newTypeError(TypeErrGeneric, "%q is not a class", n.Parent)
		}
		parent = pv.Class
	}

	cls := NewClass(n.Name, parent, n.Methods)
	env.Define(n.Name, ClassVal(cls))
	if reg, ok := ctx.(ClassRegistrar); ok {
		reg.RegisterClass(cls)
	}
	return None, nil
}

// Execute evaluates Cond and branches into Then or, if present, Else.
func (n *IfElse) Execute(env *Env, ctx Context) (Value, error) {
	cond, err := n.Cond.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	if IsTrue(cond) {
		return n.Then.Execute(env, ctx)
	}
	if n.Else != nil {
		return n.Else.Execute(env, ctx)
	}
	return None, nil
}

// Execute renders Operand the same way Print would, into a buffer, and
// returns the buffered text as a string.
func (n *Stringify) Execute(env *Env, ctx Context) (Value, error) {
	v, err := n.Operand.Execute(env, ctx)
	if err != nil {
		return Value{}, err
	}
	s, err := Format(v, ctx)
	if err != nil {
		return Value{}, err
	}
	return Str(s), nil
}

package mython

import "testing"

// returnStmt builds a method body that returns a fixed literal, used to
// assemble classes by hand without going through the parser.
func returnStmt(v Value) Statement {
	return &Return{Value: literalOf(v)}
}

func literalOf(v Value) Statement {
	switch v.Kind {
	case KindNumber:
		return &NumberLiteral{Value: v.Num}
	case KindString:
		return &StringLiteral{Value: v.Str}
	case KindBool:
		return &BoolLiteral{Value: v.Bool}
	default:
		return &NoneLiteral{}
	}
}

// inheritance & override — parent method found iff not overridden.
func Test_Class_MethodLookup_InheritanceAndOverride(t *testing.T) {
	base := NewClass("B", nil, []*Method{
		{Name: "greet", Params: nil, Body: returnStmt(Str("B"))},
	})
	derived := NewClass("D", base, []*Method{
		{Name: "greet", Params: nil, Body: returnStmt(Str("D"))},
	})

	ctx := NewContext(nil)
	ins := NewRawInstance(derived)
	v, err := ins.Call("greet", nil, ctx)
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if v.Str != "D" {
		t.Fatalf("expected override to win, got %q", v.Str)
	}

	// Remove the override: a fresh class with no greet of its own must find B's.
	derivedNoOverride := NewClass("D", base, nil)
	ins2 := NewRawInstance(derivedNoOverride)
	v2, err := ins2.Call("greet", nil, ctx)
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if v2.Str != "B" {
		t.Fatalf("expected parent method, got %q", v2.Str)
	}
}

func Test_Class_HasMethod_ArityMatters(t *testing.T) {
	cls := NewClass("C", nil, []*Method{
		{Name: "f", Params: []string{"x"}, Body: &Compound{}},
	})
	if !cls.HasMethod("f", 1) {
		t.Fatal("expected HasMethod(f, 1) to be true")
	}
	if cls.HasMethod("f", 0) {
		t.Fatal("expected HasMethod(f, 0) to be false (arity mismatch)")
	}
	if cls.HasMethod("g", 0) {
		t.Fatal("expected HasMethod(g, 0) to be false (no such method)")
	}
}

func Test_Instance_Call_MissingMethodIsTypeError(t *testing.T) {
	cls := NewClass("C", nil, nil)
	ins := NewRawInstance(cls)
	_, err := ins.Call("nope", nil, NewContext(nil))
	if err == nil {
		t.Fatal("expected an error for a missing method")
	}
	te, ok := err.(*TypeError)
	if !ok || te.Kind != TypeErrNoMethod {
		t.Fatalf("expected a TypeErrNoMethod TypeError, got %T: %v", err, err)
	}
}

func Test_Instance_Call_WrongArityIsTypeErrArity(t *testing.T) {
	cls := NewClass("C", nil, []*Method{
		{Name: "f", Params: []string{"x"}, Body: &Compound{}},
	})
	ins := NewRawInstance(cls)
	_, err := ins.Call("f", nil, NewContext(nil))
	if err == nil {
		t.Fatal("expected an error for an arity mismatch")
	}
	te, ok := err.(*TypeError)
	if !ok || te.Kind != TypeErrArity {
		t.Fatalf("expected a TypeErrArity TypeError, got %T: %v", err, err)
	}
}

// return semantics — a method stops at its first Return.
func Test_Instance_Call_ReturnStopsExecution(t *testing.T) {
	cls := NewClass("C", nil, []*Method{
		{Name: "f", Params: nil, Body: &Compound{Stmts: []Statement{
			&Return{Value: &NumberLiteral{Value: 1}},
			&Return{Value: &NumberLiteral{Value: 2}}, // must never run
		}}},
	})
	ins := NewRawInstance(cls)
	v, err := ins.Call("f", nil, NewContext(nil))
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if v.Num != 1 {
		t.Fatalf("got %d, want 1", v.Num)
	}
}

func Test_Instance_Print_FallsBackWithoutStr(t *testing.T) {
	cls := NewClass("Point", nil, nil)
	ins := NewRawInstance(cls)
	s, err := Format(InstanceVal(ins), NewContext(nil))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	want := instanceTag(ins)
	if s != want {
		t.Fatalf("got %q, want %q", s, want)
	}
}

// invariant: printing a C instance with __str__ returning String(s) emits s.
func Test_Instance_Print_UsesStr(t *testing.T) {
	cls := NewClass("Point", nil, []*Method{
		{Name: methodStr, Params: nil, Body: returnStmt(Str("(1, 2)"))},
	})
	ins := NewRawInstance(cls)
	s, err := Format(InstanceVal(ins), NewContext(nil))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if s != "(1, 2)" {
		t.Fatalf("got %q, want %q", s, "(1, 2)")
	}
}

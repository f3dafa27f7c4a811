package mython

import "testing"

func mustParse(t *testing.T, src string) *Compound {
	t.Helper()
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("ParseProgram(%q) error: %v", src, err)
	}
	return prog
}

func Test_Parser_Assignment(t *testing.T) {
	prog := mustParse(t, "x = 1\n")
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	a, ok := prog.Stmts[0].(*Assignment)
	if !ok {
		t.Fatalf("expected *Assignment, got %T", prog.Stmts[0])
	}
	if a.Target != "x" {
		t.Fatalf("got target %q, want x", a.Target)
	}
}

func Test_Parser_DottedFieldAssignment(t *testing.T) {
	prog := mustParse(t, "a.b.c = 1\n")
	fa, ok := prog.Stmts[0].(*FieldAssignment)
	if !ok {
		t.Fatalf("expected *FieldAssignment, got %T", prog.Stmts[0])
	}
	if fa.Field != "c" {
		t.Fatalf("got field %q, want c", fa.Field)
	}
	obj, ok := fa.Object.(*VariableValue)
	if !ok || len(obj.Path) != 2 || obj.Path[0] != "a" || obj.Path[1] != "b" {
		t.Fatalf("got object path %#v", fa.Object)
	}
}

func Test_Parser_IfElseInlineAndBlock(t *testing.T) {
	inline := mustParse(t, "if x: print 1\n")
	if _, ok := inline.Stmts[0].(*IfElse); !ok {
		t.Fatalf("expected *IfElse, got %T", inline.Stmts[0])
	}

	block := mustParse(t, "if x:\n  print 1\n  print 2\nelse:\n  print 3\n")
	ie, ok := block.Stmts[0].(*IfElse)
	if !ok {
		t.Fatalf("expected *IfElse, got %T", block.Stmts[0])
	}
	then, ok := ie.Then.(*Compound)
	if !ok || len(then.Stmts) != 2 {
		t.Fatalf("expected a 2-statement then-block, got %#v", ie.Then)
	}
	if ie.Else == nil {
		t.Fatal("expected an else branch")
	}
}

func Test_Parser_ClassDefWithInheritance(t *testing.T) {
	src := "class B:\n  def greet(self):\n    return \"B\"\nclass D(B):\n  def greet(self):\n    return \"D\"\n"
	prog := mustParse(t, src)
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 class statements, got %d", len(prog.Stmts))
	}
	d, ok := prog.Stmts[1].(*ClassDefinition)
	if !ok {
		t.Fatalf("expected *ClassDefinition, got %T", prog.Stmts[1])
	}
	if d.Name != "D" || d.Parent != "B" {
		t.Fatalf("got name=%q parent=%q", d.Name, d.Parent)
	}
	if len(d.Methods) != 1 || d.Methods[0].Name != "greet" {
		t.Fatalf("got methods %#v", d.Methods)
	}
}

func Test_Parser_NewInstanceVsMethodCall(t *testing.T) {
	prog := mustParse(t, "p = Point(1, 2)\np.move(3)\n")
	a, ok := prog.Stmts[0].(*Assignment)
	if !ok {
		t.Fatalf("expected *Assignment, got %T", prog.Stmts[0])
	}
	ni, ok := a.Value.(*NewInstance)
	if !ok || ni.ClassName != "Point" || len(ni.Args) != 2 {
		t.Fatalf("got %#v", a.Value)
	}
	mc, ok := prog.Stmts[1].(*MethodCall)
	if !ok || mc.Method != "move" || len(mc.Args) != 1 {
		t.Fatalf("got %#v", prog.Stmts[1])
	}
}

func Test_Parser_Stringify(t *testing.T) {
	prog := mustParse(t, "x = str(1)\n")
	a := prog.Stmts[0].(*Assignment)
	if _, ok := a.Value.(*Stringify); !ok {
		t.Fatalf("expected *Stringify, got %T", a.Value)
	}
}

func Test_Parser_PrecedenceAndAssociativity(t *testing.T) {
	// 1 + 2 * 3 must parse as Add(1, Mult(2, 3)), not Mult(Add(1,2), 3).
	prog := mustParse(t, "x = 1 + 2 * 3\n")
	a := prog.Stmts[0].(*Assignment)
	add, ok := a.Value.(*Arith)
	if !ok || add.Op != OpAdd {
		t.Fatalf("expected top-level Add, got %#v", a.Value)
	}
	if _, ok := add.Left.(*NumberLiteral); !ok {
		t.Fatalf("expected left operand to be a literal, got %#v", add.Left)
	}
	mul, ok := add.Right.(*Arith)
	if !ok || mul.Op != OpMul {
		t.Fatalf("expected right operand to be Mult, got %#v", add.Right)
	}
}

func Test_Parser_ComparisonOperators(t *testing.T) {
	ops := map[string]func(Value, Value, Context) (bool, error){
		"==": Equal, "!=": NotEqual, "<": Less, ">": Greater, "<=": LessOrEqual, ">=": GreaterOrEqual,
	}
	for sym := range ops {
		prog := mustParse(t, "x = 1 "+sym+" 2\n")
		a := prog.Stmts[0].(*Assignment)
		if _, ok := a.Value.(*Comparison); !ok {
			t.Fatalf("operator %q: expected *Comparison, got %#v", sym, a.Value)
		}
	}
}

func Test_Parser_PrintWithNoArgs(t *testing.T) {
	prog := mustParse(t, "print\n")
	p, ok := prog.Stmts[0].(*Print)
	if !ok || len(p.Args) != 0 {
		t.Fatalf("expected an empty Print, got %#v", prog.Stmts[0])
	}
}

func Test_Parser_UnaryMinus(t *testing.T) {
	prog := mustParse(t, "x = -5\n")
	a := prog.Stmts[0].(*Assignment)
	arith, ok := a.Value.(*Arith)
	if !ok || arith.Op != OpSub {
		t.Fatalf("expected unary minus to desugar to Sub, got %#v", a.Value)
	}
}

func Test_Parser_MalformedInputIsParseError(t *testing.T) {
	_, err := ParseProgram("x = \n")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

// parser.go — recursive-descent parser turning a token stream into the
// ast.go vocabulary directly, with no intermediate representation.
//
// Grounded on the teacher's own parser.go shape: one function per grammar
// production, precedence climbing for the binary-operator ladder
// (or/and/not/comparison/arith/term), and a single token of lookahead drawn
// from the lexer's Current/Next pair.
package mython

import "fmt"

// Parser drives a Lexer one token of lookahead at a time.
type Parser struct {
	lex *Lexer
	cur Token
}

// NewParser returns a parser positioned at src's first token.
func NewParser(src string) *Parser {
	l := NewLexer(src)
	return &Parser{lex: l, cur: l.Current()}
}

// ParseProgram parses a complete Mython program into a single Compound
// statement: `program := statement*`.
func ParseProgram(src string) (*Compound, error) {
	p := NewParser(src)
	var stmts []Statement
	for p.cur.Type != EOF {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return &Compound{Stmts: stmts}, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) atChar(c byte) bool { return p.cur.Type == CHAR && p.cur.Char == c }

func (p *Parser) parseErrorf(format string, args ...any) error {
	return &ParseError{Line: p.cur.Line, Col: p.cur.Col, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) expectChar(c byte) error {
	if !p.atChar(c) {
		return p.parseErrorf("expected %q", string(c))
	}
	return p.advance()
}

func (p *Parser) expectType(t TokenType, what string) (Token, error) {
	if p.cur.Type != t {
		return Token{}, p.parseErrorf("expected %s", what)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// consumeNewline absorbs a trailing NEWLINE if one is present; the final
// line of a program is always NEWLINE-terminated by the lexer, but a
// suite's inline form may already have consumed it via its parent.
func (p *Parser) consumeNewline() error {
	if p.cur.Type == NEWLINE {
		return p.advance()
	}
	return nil
}

// --- statements ------------------------------------------------------------

func (p *Parser) parseStatement() (Statement, error) {
	switch p.cur.Type {
	case CLASS:
		return p.parseClassDef()
	case IF:
		return p.parseIfStmt()
	case PRINT:
		return p.parsePrintStmt()
	case RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseSimpleStmt()
	}
}

// parseBlock implements `block := NEWLINE INDENT statement+ DEDENT`.
func (p *Parser) parseBlock() (Statement, error) {
	if err := p.expectNewlineIndent(); err != nil {
		return nil, err
	}
	var stmts []Statement
	for p.cur.Type != DEDENT {
		if p.cur.Type == EOF {
			return nil, p.parseErrorf("unexpected end of input inside block")
		}
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if err := p.advance(); err != nil { // consume DEDENT
		return nil, err
	}
	return &Compound{Stmts: stmts}, nil
}

func (p *Parser) expectNewlineIndent() error {
	if _, err := p.expectType(NEWLINE, "newline"); err != nil {
		return err
	}
	_, err := p.expectType(INDENT, "indented block")
	return err
}

// parseSuite implements `suite := block | statement`.
func (p *Parser) parseSuite() (Statement, error) {
	if p.cur.Type == NEWLINE {
		return p.parseBlock()
	}
	s, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// parseClassDef implements `class_def`.
func (p *Parser) parseClassDef() (Statement, error) {
	if err := p.advance(); err != nil { // 'class'
		return nil, err
	}
	name, err := p.expectType(ID, "class name")
	if err != nil {
		return nil, err
	}
	parent := ""
	if p.atChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		pname, err := p.expectType(ID, "parent class name")
		if err != nil {
			return nil, err
		}
		parent = pname.Str
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expectNewlineIndent(); err != nil {
		return nil, err
	}
	var methods []*Method
	for p.cur.Type == DEF {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if _, err := p.expectType(DEDENT, "end of class body"); err != nil {
		return nil, err
	}
	return &ClassDefinition{Name: name.Str, Parent: parent, Methods: methods}, nil
}

// parseMethodDef implements `method_def`. Only reachable from parseClassDef
// — a bare `def` never appears as a top-level statement in Mython, since
// methods belong to a class.
func (p *Parser) parseMethodDef() (*Method, error) {
	if err := p.advance(); err != nil { // 'def'
		return nil, err
	}
	name, err := p.expectType(ID, "method name")
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.atChar(')') {
		for {
			pn, err := p.expectType(ID, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, pn.Str)
			if !p.atChar(',') {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	// A leading `self` is the implicit receiver that Instance.Call binds
	// itself; it is not a formal parameter and does not count toward arity.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &Method{Name: name.Str, Params: params, Body: body}, nil
}

// parseIfStmt implements `if_stmt`.
func (p *Parser) parseIfStmt() (Statement, error) {
	if err := p.advance(); err != nil { // 'if'
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	then, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var elseBody Statement
	if p.cur.Type == ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return &IfElse{Cond: cond, Then: then, Else: elseBody}, nil
}

// parsePrintStmt implements `print_stmt`.
func (p *Parser) parsePrintStmt() (Statement, error) {
	if err := p.advance(); err != nil { // 'print'
		return nil, err
	}
	var args []Statement
	if p.startsExpr() {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		for p.atChar(',') {
			if err := p.advance(); err != nil {
				return nil, err
			}
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
		}
	}
	if err := p.consumeNewline(); err != nil {
		return nil, err
	}
	return &Print{Args: args}, nil
}

// parseReturnStmt implements `return_stmt`.
func (p *Parser) parseReturnStmt() (Statement, error) {
	if err := p.advance(); err != nil { // 'return'
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consumeNewline(); err != nil {
		return nil, err
	}
	return &Return{Value: e}, nil
}

// parseSimpleStmt implements `simple_stmt := assignment | expr`: parse an
// expression, then reinterpret it as an assignment target if it is a bare
// dotted name immediately followed by '='.
func (p *Parser) parseSimpleStmt() (Statement, error) {
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if vv, ok := e.(*VariableValue); ok && p.atChar('=') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consumeNewline(); err != nil {
			return nil, err
		}
		if len(vv.Path) == 1 {
			return &Assignment{Target: vv.Path[0], Value: rhs}, nil
		}
		return &FieldAssignment{
			Object: &VariableValue{Path: vv.Path[:len(vv.Path)-1]},
			Field:  vv.Path[len(vv.Path)-1],
			Value:  rhs,
		}, nil
	}
	if err := p.consumeNewline(); err != nil {
		return nil, err
	}
	return e, nil
}

// startsExpr reports whether the current token could begin an expression,
// used to detect a bare `print` with no arguments.
func (p *Parser) startsExpr() bool {
	switch p.cur.Type {
	case NEWLINE, EOF, DEDENT:
		return false
	}
	return true
}

// --- expressions -------------------------------------------------------

func (p *Parser) parseExpr() (Statement, error) { return p.parseOrExpr() }

func (p *Parser) parseOrExpr() (Statement, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == OR {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAndExpr() (Statement, error) {
	left, err := p.parseNotExpr()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == AND {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNotExpr() (Statement, error) {
	if p.cur.Type == NOT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (Statement, error) {
	left, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	cmp, ok := p.comparatorForCurrent()
	if !ok {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	return &Comparison{Cmp: cmp, Left: left, Right: right}, nil
}

func (p *Parser) comparatorForCurrent() (Comparator, bool) {
	switch p.cur.Type {
	case EQ:
		return Equal, true
	case NOTEQ:
		return NotEqual, true
	case LESSOREQ:
		return LessOrEqual, true
	case GREATEROEQ:
		return GreaterOrEqual, true
	case CHAR:
		switch p.cur.Char {
		case '<':
			return Less, true
		case '>':
			return Greater, true
		}
	}
	return nil, false
}

func (p *Parser) parseArith() (Statement, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.atChar('+') || p.atChar('-') {
		op := OpAdd
		if p.cur.Char == '-' {
			op = OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Arith{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Statement, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.atChar('*') || p.atChar('/') {
		op := OpMul
		if p.cur.Char == '/' {
			op = OpDiv
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Arith{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseFactor() (Statement, error) {
	if p.atChar('-') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &Arith{Op: OpSub, Left: &NumberLiteral{Value: 0}, Right: operand}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (Statement, error) {
	prim, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.atChar('.'):
			if err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.expectType(ID, "field or method name")
			if err != nil {
				return nil, err
			}
			if p.atChar('(') {
				if err := p.advance(); err != nil {
					return nil, err
				}
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				if err := p.expectChar(')'); err != nil {
					return nil, err
				}
				prim = &MethodCall{Object: prim, Method: name.Str, Args: args}
				continue
			}
			vv, ok := prim.(*VariableValue)
			if !ok {
				return nil, p.parseErrorf("dotted access is only supported on identifier chains")
			}
			prim = &VariableValue{Path: append(append([]string{}, vv.Path...), name.Str)}
		case p.atChar('('):
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			vv, ok := prim.(*VariableValue)
			if !ok || len(vv.Path) != 1 {
				return nil, p.parseErrorf("can only instantiate a bare class name")
			}
			prim = &NewInstance{ClassName: vv.Path[0], Args: args}
		default:
			return prim, nil
		}
	}
}

func (p *Parser) parseArgs() ([]Statement, error) {
	if p.atChar(')') {
		return nil, nil
	}
	var args []Statement
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args = append(args, e)
	for p.atChar(',') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return args, nil
}

func (p *Parser) parsePrimary() (Statement, error) {
	switch p.cur.Type {
	case NUMBER:
		v := p.cur.Num
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NumberLiteral{Value: v}, nil
	case STRING:
		s := p.cur.Str
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StringLiteral{Value: s}, nil
	case TRUE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolLiteral{Value: true}, nil
	case FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolLiteral{Value: false}, nil
	case NONE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NoneLiteral{}, nil
	case ID:
		name := p.cur.Str
		if err := p.advance(); err != nil {
			return nil, err
		}
		if name == "str" && p.atChar('(') {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return &Stringify{Operand: arg}, nil
		}
		return &VariableValue{Path: []string{name}}, nil
	case CHAR:
		if p.cur.Char == '(' {
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return inner, nil
		}
	}
	return nil, p.parseErrorf("unexpected token %s in expression", p.cur.String())
}

// IsIncomplete reports whether err is a ParseError caused only by input
// ending before a block closed — the signal a REPL uses to keep reading
// continuation lines instead of reporting a fault.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Msg == "unexpected end of input inside block"
}

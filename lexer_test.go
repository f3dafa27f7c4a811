package mython

import (
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer(src)
	ts, err := l.Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

// indent/dedent balancing across a nested block.
func Test_Lexer_IndentDedentBalancing(t *testing.T) {
	src := "if x:\n  print x\nprint 1\n"
	want := []TokenType{
		IF, ID, CHAR, NEWLINE,
		INDENT, PRINT, ID, NEWLINE,
		DEDENT, PRINT, NUMBER, NEWLINE,
	}
	wantTypes(t, src, want)
}

// string escapes decode to literal bytes.
func Test_Lexer_StringEscapes(t *testing.T) {
	ts := toks(t, `"a\nb"`)
	if len(ts) < 1 || ts[0].Type != STRING {
		t.Fatalf("expected a single String token, got %v", ts)
	}
	if ts[0].Str != "a\nb" {
		t.Fatalf("got %q, want %q", ts[0].Str, "a\nb")
	}
}

func Test_Lexer_TwoByteOperators(t *testing.T) {
	ts := toks(t, "a == b != c <= d >= e")
	want := []TokenType{ID, EQ, ID, NOTEQ, ID, LESSOREQ, ID, GREATEROEQ, ID, NEWLINE}
	got := typesWithoutEOF(ts)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func Test_Lexer_SingleCharOperatorsNotGreedy(t *testing.T) {
	// a single '<' followed by a non-'=' byte must stay a lone Char.
	ts := toks(t, "a < b")
	if ts[1].Type != CHAR || ts[1].Char != '<' {
		t.Fatalf("expected a lone '<' Char token, got %v", ts[1])
	}
}

func Test_Lexer_BlankLinesAndCommentsSuppressed(t *testing.T) {
	src := "x = 1\n\n# a comment\n\ny = 2\n"
	want := []TokenType{ID, CHAR, NUMBER, NEWLINE, ID, CHAR, NUMBER, NEWLINE}
	wantTypes(t, src, want)
}

// invariant: #Indent - #Dedent sums to zero by EOF, for any nesting depth.
func Test_Lexer_Invariant_IndentDedentBalance(t *testing.T) {
	srcs := []string{
		"if x:\n  if y:\n    print 1\n  print 2\nprint 3\n",
		"class C:\n  def m(self):\n    return 1\n",
		"print 1\n",
	}
	for _, src := range srcs {
		ts := toks(t, src)
		balance := 0
		for _, tok := range ts {
			switch tok.Type {
			case INDENT:
				balance++
			case DEDENT:
				balance--
			}
		}
		if balance != 0 {
			t.Fatalf("source %q: indent/dedent balance = %d, want 0", src, balance)
		}
	}
}

// invariant: the lexer never emits two consecutive Newline tokens.
func Test_Lexer_Invariant_NoConsecutiveNewlines(t *testing.T) {
	src := "x = 1\n\n\n\ny = 2\n"
	ts := toks(t, src)
	for i := 1; i < len(ts); i++ {
		if ts[i].Type == NEWLINE && ts[i-1].Type == NEWLINE {
			t.Fatalf("consecutive Newline tokens at index %d in %v", i, ts)
		}
	}
}

func Test_Lexer_Keywords(t *testing.T) {
	src := "class return if else def print and or not None True False"
	want := []TokenType{CLASS, RETURN, IF, ELSE, DEF, PRINT, AND, OR, NOT, NONE, TRUE, FALSE, NEWLINE}
	wantTypes(t, src, want)
}

func Test_Lexer_UnterminatedStringIsLexError(t *testing.T) {
	l := NewLexer(`"abc`)
	_, err := l.Scan()
	if err == nil {
		t.Fatal("expected a lex error for an unterminated string")
	}
	var lexErr *LexError
	if !asLexError(err, &lexErr) {
		t.Fatalf("expected *LexError, got %T: %v", err, err)
	}
}

func asLexError(err error, target **LexError) bool {
	le, ok := err.(*LexError)
	if !ok {
		return false
	}
	*target = le
	return true
}

// lexer.go — tokenizes Mython source into a stream of synthetic
// INDENT/DEDENT tokens, blank-line-suppressed NEWLINE, comments, string
// escapes, and two-byte operator lookahead.
//
// Semantics are grounded directly on original_source/mython/lexer.cpp — the
// indent/dedent bookkeeping (`indent_`/`next_indent_`/`line_start_`), the EOF
// drain sequence, and the escape table are ported close to line-for-line
// from there, including the control flow shape (ReadNextToken dispatches on
// the next byte and either recurses — spaces, comments, blank lines — or
// produces a token). The Go *shape* (one token of lookahead behind
// Current/Next, buffered via a small state machine) follows the teacher's
// lexer.go.
package mython

import "strings"

// Lexer tokenizes a Mython source string on demand. One token is always
// buffered so callers may peek via Current without advancing.
type Lexer struct {
	src []byte
	pos int // byte offset of the next unread byte
	line, col int // 1-based position of the next unread byte

	indent     int // depth of the last emitted block
	nextIndent int // depth implied by the current physical line's leading spaces
	lineStart  bool

	current     Token
	deferredErr error
}

// NewLexer returns a lexer positioned at the first token of src. Unlike
// Next, construction cannot report a lex error through a return value (the
// teacher's own Lexer has the same shape); the first real error, if any,
// surfaces from the first Scan/Next call that reaches the bad input.
func NewLexer(src string) *Lexer {
	l := &Lexer{src: []byte(src), line: 1, col: 1, lineStart: true}
	tok, err := l.readNextToken()
	if err != nil {
		l.current = Token{Type: EOF}
		l.deferredErr = err
		return l
	}
	l.current = tok
	return l
}

// Current returns the most recently produced token without consuming it.
func (l *Lexer) Current() Token { return l.current }

// Next consumes the current token and returns the following one, or a
// *LexError if the remaining input cannot be tokenized.
func (l *Lexer) Next() (Token, error) {
	if l.deferredErr != nil {
		err := l.deferredErr
		l.deferredErr = nil
		return Token{}, err
	}
	tok, err := l.readNextToken()
	if err != nil {
		return Token{}, err
	}
	l.current = tok
	return tok, nil
}

// Scan drains the lexer into a slice of tokens, ending with exactly one Eof.
// It is a convenience for tests and callers that want the whole stream at
// once instead of driving Current/Next by hand (the parser uses the latter).
func (l *Lexer) Scan() ([]Token, error) {
	if l.deferredErr != nil {
		err := l.deferredErr
		l.deferredErr = nil
		return nil, err
	}
	out := []Token{l.current}
	for l.current.Type != EOF {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

func (l *Lexer) readNextToken() (Token, error) {
	for {
		ch, ok := l.peekByte()
		switch {
		case !ok:
			return l.parseEOF(), nil
		case ch == '\n':
			if tok, done := l.parseLineEnd(); done {
				return tok, nil
			}
			continue
		case ch == '#':
			l.skipComment()
			continue
		case ch == ' ':
			l.skipSpaces()
			continue
		case l.lineStart && l.indent != l.nextIndent:
			return l.parseIndentDedent(), nil
		default:
			tok, err := l.parseToken()
			if err != nil {
				return Token{}, err
			}
			l.lineStart = false
			return tok, nil
		}
	}
}

func (l *Lexer) peekByte() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) getByte() (byte, bool) {
	c, ok := l.peekByte()
	if !ok {
		return 0, false
	}
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c, true
}

// consumeRestOfLine consumes bytes through and including the next '\n' (or
// to EOF if there is none), mirroring detail::ReadLine via getline.
func (l *Lexer) consumeRestOfLine() {
	for {
		c, ok := l.getByte()
		if !ok || c == '\n' {
			return
		}
	}
}

// newLine mirrors Lexer::NewLine(): consume the rest of the physical line
// and reset per-line indent-measurement state.
func (l *Lexer) newLine() {
	l.consumeRestOfLine()
	l.lineStart = true
	l.nextIndent = 0
}

func (l *Lexer) skipComment() {
	for {
		c, ok := l.peekByte()
		if !ok || c == '\n' {
			return
		}
		l.getByte()
	}
}

// skipSpaces consumes a run of ' ' bytes, recording half the count (two
// spaces per level) as nextIndent when it occurs at the start of a line.
func (l *Lexer) skipSpaces() {
	n := 0
	for {
		c, ok := l.peekByte()
		if !ok || c != ' ' {
			break
		}
		l.getByte()
		n++
	}
	if l.lineStart {
		l.nextIndent = n / 2
	}
}

// parseEOF mirrors Lexer::ParseEOF(): a pending unterminated line first
// closes with one Newline; once at a fresh line, indentation drains one
// Dedent per call until balanced, then Eof forever.
func (l *Lexer) parseEOF() Token {
	line, col := l.line, l.col
	if !l.lineStart {
		l.newLine()
		return Token{Type: NEWLINE, Line: line, Col: col}
	}
	if l.indent > 0 {
		l.indent--
		return Token{Type: DEDENT, Line: line, Col: col}
	}
	return Token{Type: EOF, Line: line, Col: col}
}

// parseLineEnd mirrors Lexer::ParseLineEnd(). On a blank/whitespace-only
// physical line (lineStart already true) the Newline is suppressed and the
// caller must continue scanning from the fresh line; otherwise exactly one
// Newline token is produced.
func (l *Lexer) parseLineEnd() (Token, bool) {
	line, col := l.line, l.col
	if l.lineStart {
		l.newLine()
		return Token{}, false
	}
	l.newLine()
	return Token{Type: NEWLINE, Line: line, Col: col}, true
}

func (l *Lexer) parseIndentDedent() Token {
	line, col := l.line, l.col
	if l.indent < l.nextIndent {
		l.indent++
		return Token{Type: INDENT, Line: line, Col: col}
	}
	l.indent--
	return Token{Type: DEDENT, Line: line, Col: col}
}

func (l *Lexer) parseToken() (Token, error) {
	ch, _ := l.peekByte()
	switch {
	case isDigit(ch):
		return l.parseNumber(), nil
	case isNameStart(ch):
		return l.parseName(), nil
	case ch == '"' || ch == '\'':
		return l.parseString()
	default:
		return l.parseChar(), nil
	}
}

func (l *Lexer) parseNumber() Token {
	line, col := l.line, l.col
	var n int64
	for {
		c, ok := l.peekByte()
		if !ok || !isDigit(c) {
			break
		}
		l.getByte()
		n = n*10 + int64(c-'0')
	}
	return Token{Type: NUMBER, Num: n, Line: line, Col: col}
}

func (l *Lexer) parseName() Token {
	line, col := l.line, l.col
	var sb strings.Builder
	for {
		c, ok := l.peekByte()
		if !ok || !isNameChar(c) {
			break
		}
		l.getByte()
		sb.WriteByte(c)
	}
	name := sb.String()
	if kw, ok := keywords[name]; ok {
		return Token{Type: kw, Line: line, Col: col}
	}
	return Token{Type: ID, Str: name, Line: line, Col: col}
}

// parseString consumes a '...'/"..." literal, decoding \", \', \n, \t. Bytes
// outside ASCII pass through verbatim — allowed inside strings, though
// isNameStart/isNameChar still forbid them in identifiers.
func (l *Lexer) parseString() (Token, error) {
	line, col := l.line, l.col
	opener, _ := l.getByte()

	var sb strings.Builder
	for {
		c, ok := l.getByte()
		if !ok {
			return Token{}, &LexError{Line: line, Col: col, Msg: "unterminated string literal"}
		}
		if c == '\\' {
			next, ok := l.getByte()
			if !ok {
				return Token{}, &LexError{Line: line, Col: col, Msg: "unterminated string literal"}
			}
			switch next {
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(next)
			}
			continue
		}
		if c == opener {
			return Token{Type: STRING, Str: sb.String(), Line: line, Col: col}, nil
		}
		sb.WriteByte(c)
	}
}

func (l *Lexer) parseChar() Token {
	line, col := l.line, l.col
	first, _ := l.getByte()
	second, ok := l.peekByte()
	if ok {
		pair := string([]byte{first, second})
		if tt, isOp := doubleCharOps[pair]; isOp {
			l.getByte()
			return Token{Type: tt, Line: line, Col: col}
		}
	}
	return Token{Type: CHAR, Char: first, Line: line, Col: col}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isNameStart(c byte) bool  { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isNameChar(c byte) bool   { return isNameStart(c) || isDigit(c) }

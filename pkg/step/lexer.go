package step

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SyntaxError reports a malformed STEP file with the line it was found on.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokKeyword
	tokInt
	tokReal
	tokString
	tokEnum
	tokRef
	tokBinary
	tokOmitted
	tokDerived
	tokLParen
	tokRParen
	tokComma
	tokSemi
	tokEq
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokKeyword:
		return "keyword"
	case tokInt:
		return "integer"
	case tokReal:
		return "real"
	case tokString:
		return "string"
	case tokEnum:
		return "enumeration"
	case tokRef:
		return "reference"
	case tokBinary:
		return "binary"
	case tokOmitted:
		return "$"
	case tokDerived:
		return "*"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokComma:
		return ","
	case tokSemi:
		return ";"
	case tokEq:
		return "="
	}
	return "unknown token"
}

type token struct {
	kind tokenKind
	text string  // keyword, string (unescaped), enum, binary payload
	num  int64   // integer, reference id
	real float64 // real
	line int
}

// lexer produces STEP tokens from a byte stream, tracking line numbers
// for error reporting. Comments (/* ... */) and whitespace are skipped.
type lexer struct {
	r    *bufio.Reader
	line int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReaderSize(r, 64<<10), line: 1}
}

func (l *lexer) errorf(format string, args ...any) error {
	return &SyntaxError{Line: l.line, Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) readByte() (byte, error) {
	c, err := l.r.ReadByte()
	if err == nil && c == '\n' {
		l.line++
	}
	return c, err
}

func (l *lexer) unreadByte(c byte) {
	if c == '\n' {
		l.line--
	}
	_ = l.r.UnreadByte()
}

// skipSpace consumes whitespace and comments, returning the first
// significant byte. io.EOF signals a clean end of input.
func (l *lexer) skipSpace() (byte, error) {
	for {
		c, err := l.readByte()
		if err != nil {
			return 0, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '/':
			next, err := l.readByte()
			if err != nil || next != '*' {
				return 0, l.errorf("unexpected character %q", '/')
			}
			if err := l.skipComment(); err != nil {
				return 0, err
			}
		default:
			return c, nil
		}
	}
}

func (l *lexer) skipComment() error {
	var prev byte
	for {
		c, err := l.readByte()
		if err != nil {
			return l.errorf("unterminated comment")
		}
		if prev == '*' && c == '/' {
			return nil
		}
		prev = c
	}
}

func (l *lexer) next() (token, error) {
	c, err := l.skipSpace()
	if err == io.EOF {
		return token{kind: tokEOF, line: l.line}, nil
	}
	if err != nil {
		return token{}, err
	}

	tok := token{line: l.line}
	switch {
	case c == '(':
		tok.kind = tokLParen
	case c == ')':
		tok.kind = tokRParen
	case c == ',':
		tok.kind = tokComma
	case c == ';':
		tok.kind = tokSemi
	case c == '=':
		tok.kind = tokEq
	case c == '$':
		tok.kind = tokOmitted
	case c == '*':
		tok.kind = tokDerived
	case c == '#':
		return l.lexRef()
	case c == '\'':
		return l.lexString()
	case c == '.':
		return l.lexEnum()
	case c == '"':
		return l.lexBinary()
	case c == '+' || c == '-' || isDigit(c):
		return l.lexNumber(c)
	case isAlpha(c) || c == '!':
		return l.lexKeyword(c)
	default:
		return token{}, l.errorf("unexpected character %q", c)
	}
	return tok, nil
}

func (l *lexer) lexRef() (token, error) {
	tok := token{kind: tokRef, line: l.line}
	var digits strings.Builder
	for {
		c, err := l.readByte()
		if err != nil {
			break
		}
		if !isDigit(c) {
			l.unreadByte(c)
			break
		}
		digits.WriteByte(c)
	}
	if digits.Len() == 0 {
		return token{}, l.errorf("malformed instance reference")
	}
	id, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return token{}, l.errorf("instance id out of range: #%s", digits.String())
	}
	tok.num = id
	return tok, nil
}

// lexString reads a quoted string, decoding the '' apostrophe escape.
// Backslash sequences are left untouched.
func (l *lexer) lexString() (token, error) {
	tok := token{kind: tokString, line: l.line}
	var b strings.Builder
	for {
		c, err := l.readByte()
		if err != nil {
			return token{}, l.errorf("unterminated string")
		}
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		next, err := l.readByte()
		if err == nil && next == '\'' {
			b.WriteByte('\'')
			continue
		}
		if err == nil {
			l.unreadByte(next)
		}
		tok.text = b.String()
		return tok, nil
	}
}

func (l *lexer) lexEnum() (token, error) {
	tok := token{kind: tokEnum, line: l.line}
	var b strings.Builder
	for {
		c, err := l.readByte()
		if err != nil {
			return token{}, l.errorf("unterminated enumeration")
		}
		if c == '.' {
			break
		}
		if !isAlpha(c) && !isDigit(c) && c != '_' && c != '-' {
			return token{}, l.errorf("invalid enumeration character %q", c)
		}
		b.WriteByte(c)
	}
	if b.Len() == 0 {
		return token{}, l.errorf("empty enumeration")
	}
	tok.text = strings.ToUpper(b.String())
	return tok, nil
}

func (l *lexer) lexBinary() (token, error) {
	tok := token{kind: tokBinary, line: l.line}
	var b strings.Builder
	for {
		c, err := l.readByte()
		if err != nil {
			return token{}, l.errorf("unterminated binary literal")
		}
		if c == '"' {
			break
		}
		b.WriteByte(c)
	}
	tok.text = b.String()
	return tok, nil
}

func (l *lexer) lexNumber(first byte) (token, error) {
	var b strings.Builder
	b.WriteByte(first)
	isReal := false

	readDigits := func() {
		for {
			c, err := l.readByte()
			if err != nil {
				return
			}
			if !isDigit(c) {
				l.unreadByte(c)
				return
			}
			b.WriteByte(c)
		}
	}

	readDigits()
	if c, err := l.readByte(); err == nil {
		if c == '.' {
			isReal = true
			b.WriteByte(c)
			readDigits()
		} else {
			l.unreadByte(c)
		}
	}
	if c, err := l.readByte(); err == nil {
		if c == 'E' || c == 'e' {
			isReal = true
			b.WriteByte('E')
			if s, err := l.readByte(); err == nil {
				if s == '+' || s == '-' || isDigit(s) {
					b.WriteByte(s)
				} else {
					l.unreadByte(s)
				}
			}
			readDigits()
		} else {
			l.unreadByte(c)
		}
	}

	tok := token{line: l.line}
	if isReal {
		f, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return token{}, l.errorf("malformed real %q", b.String())
		}
		tok.kind = tokReal
		tok.real = f
		return tok, nil
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return token{}, l.errorf("malformed integer %q", b.String())
	}
	tok.kind = tokInt
	tok.num = n
	return tok, nil
}

// lexKeyword reads an entity or header keyword. The section delimiters
// ISO-10303-21 and END-ISO-10303-21 contain hyphens, so those are allowed.
func (l *lexer) lexKeyword(first byte) (token, error) {
	tok := token{kind: tokKeyword, line: l.line}
	var b strings.Builder
	b.WriteByte(first)
	for {
		c, err := l.readByte()
		if err != nil {
			break
		}
		if !isAlpha(c) && !isDigit(c) && c != '_' && c != '-' {
			l.unreadByte(c)
			break
		}
		b.WriteByte(c)
	}
	tok.text = strings.ToUpper(b.String())
	return tok, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

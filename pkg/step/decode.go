package step

import (
	"fmt"
	"io"
	"os"
)

// Section delimiter keywords.
const (
	kwOpen   = "ISO-10303-21"
	kwClose  = "END-ISO-10303-21"
	kwHeader = "HEADER"
	kwData   = "DATA"
	kwEndSec = "ENDSEC"
)

// Decode parses a STEP physical file. Instances are stored in declared
// order; every reference must resolve to a declared instance (forward
// references are fine).
func Decode(r io.Reader) (*File, error) {
	p := &parser{lex: newLexer(r)}
	f, err := p.parseFile()
	if err != nil {
		return nil, err
	}
	if err := f.CheckRefs(); err != nil {
		return nil, err
	}
	return f, nil
}

// DecodeFile opens and parses the file at path.
func DecodeFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Decode(fh)
}

type parser struct {
	lex *lexer
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return &SyntaxError{Line: tok.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok, err := p.lex.next()
	if err != nil {
		return token{}, err
	}
	if tok.kind != kind {
		return token{}, p.errorf(tok, "expected %s, got %s", kind, tok.kind)
	}
	return tok, nil
}

func (p *parser) expectKeyword(name string) error {
	tok, err := p.expect(tokKeyword)
	if err != nil {
		return err
	}
	if tok.text != name {
		return p.errorf(tok, "expected %s, got %s", name, tok.text)
	}
	return nil
}

func (p *parser) parseFile() (*File, error) {
	if err := p.expectKeyword(kwOpen); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}

	f := &File{byID: make(map[int64]*Instance)}
	if err := p.parseHeader(f); err != nil {
		return nil, err
	}
	if err := p.parseData(f); err != nil {
		return nil, err
	}

	if err := p.expectKeyword(kwClose); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *parser) parseHeader(f *File) error {
	if err := p.expectKeyword(kwHeader); err != nil {
		return err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return err
	}

	for {
		tok, err := p.expect(tokKeyword)
		if err != nil {
			return err
		}
		if tok.text == kwEndSec {
			_, err := p.expect(tokSemi)
			return err
		}

		args, err := p.parseArgs()
		if err != nil {
			return err
		}
		if _, err := p.expect(tokSemi); err != nil {
			return err
		}
		f.Header.apply(tok.text, args)
	}
}

func (p *parser) parseData(f *File) error {
	if err := p.expectKeyword(kwData); err != nil {
		return err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return err
	}

	for {
		tok, err := p.lex.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokKeyword:
			if tok.text != kwEndSec {
				return p.errorf(tok, "expected instance or ENDSEC, got %s", tok.text)
			}
			_, err := p.expect(tokSemi)
			return err
		case tokRef:
			if err := p.parseInstance(f, tok); err != nil {
				return err
			}
		default:
			return p.errorf(tok, "expected instance or ENDSEC, got %s", tok.kind)
		}
	}
}

func (p *parser) parseInstance(f *File, ref token) error {
	if _, err := p.expect(tokEq); err != nil {
		return err
	}

	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	if tok.kind == tokLParen {
		// Complex (multi-leaf) instances encode multiple inheritance.
		// IFC never uses them; rejecting keeps the data model simple.
		return p.errorf(tok, "complex instance #%d is not supported", ref.num)
	}
	if tok.kind != tokKeyword {
		return p.errorf(tok, "expected entity keyword, got %s", tok.kind)
	}

	args, err := p.parseArgs()
	if err != nil {
		return err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return err
	}

	inst := &Instance{ID: ref.num, Type: tok.text, Args: args}
	if err := f.Append(inst); err != nil {
		return p.errorf(ref, "%v", err)
	}
	return nil
}

// parseArgs parses a parenthesized, comma-separated argument list.
func (p *parser) parseArgs() ([]Value, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}

	var args []Value
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokRParen {
		return args, nil
	}

	for {
		v, err := p.parseValue(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, v)

		tok, err = p.lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokComma:
			tok, err = p.lex.next()
			if err != nil {
				return nil, err
			}
		case tokRParen:
			return args, nil
		default:
			return nil, p.errorf(tok, "expected , or ), got %s", tok.kind)
		}
	}
}

func (p *parser) parseValue(tok token) (Value, error) {
	switch tok.kind {
	case tokOmitted:
		return Value{Kind: Omitted}, nil
	case tokDerived:
		return Value{Kind: Derived}, nil
	case tokInt:
		return NewInt(tok.num), nil
	case tokReal:
		return NewReal(tok.real), nil
	case tokString:
		return Value{Kind: String, Str: tok.text}, nil
	case tokEnum:
		return Value{Kind: Enum, Str: tok.text}, nil
	case tokRef:
		return NewRef(tok.num), nil
	case tokBinary:
		return Value{Kind: Binary, Str: tok.text}, nil
	case tokLParen:
		return p.parseList()
	case tokKeyword:
		inner, err := p.parseArgs()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: Typed, Str: tok.text, Items: inner}, nil
	default:
		return Value{}, p.errorf(tok, "expected value, got %s", tok.kind)
	}
}

func (p *parser) parseList() (Value, error) {
	var items []Value
	tok, err := p.lex.next()
	if err != nil {
		return Value{}, err
	}
	if tok.kind == tokRParen {
		return Value{Kind: List}, nil
	}

	for {
		v, err := p.parseValue(tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)

		tok, err = p.lex.next()
		if err != nil {
			return Value{}, err
		}
		switch tok.kind {
		case tokComma:
			tok, err = p.lex.next()
			if err != nil {
				return Value{}, err
			}
		case tokRParen:
			return Value{Kind: List, Items: items}, nil
		default:
			return Value{}, p.errorf(tok, "expected , or ), got %s", tok.kind)
		}
	}
}

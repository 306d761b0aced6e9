package luatable

import "strconv"

// maxDepth bounds recursion while parsing nested tables. Catalog blobs stay
// under depth 10 in practice; the limit only guards against pathological
// input.
const maxDepth = 128

// Parse tokenizes and parses literal text into a Value tree. The top-level
// shape is usually a table, but a bare scalar is accepted as a
// single-element tree because some catalog variants store a lone literal.
func Parse(text string) (Value, error) {
	p := &parser{lex: newLexer(text)}
	p.advance()
	p.advance()

	value, err := p.parseValue(0)
	if err != nil {
		return Value{}, err
	}
	if p.cur.typ != tokenEOF {
		return Value{}, p.unexpected(p.cur)
	}
	return value, nil
}

type parser struct {
	lex  *lexer
	cur  token
	next token
}

func (p *parser) advance() {
	p.cur = p.next
	p.next = p.lex.next()
}

func (p *parser) parseValue(depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, newParseError(ErrNestingTooDeep, p.cur.pos, "")
	}
	switch p.cur.typ {
	case tokenLBrace:
		return p.parseTable(depth)
	case tokenString:
		v := StringValue(p.cur.literal)
		p.advance()
		return v, nil
	case tokenNumber:
		n, err := strconv.ParseFloat(p.cur.literal, 64)
		if err != nil {
			return Value{}, newParseError(ErrMalformedNumber, p.cur.pos, p.cur.literal)
		}
		p.advance()
		return NumberValue(n), nil
	case tokenTrue:
		p.advance()
		return BoolValue(true), nil
	case tokenFalse:
		p.advance()
		return BoolValue(false), nil
	case tokenNil:
		p.advance()
		return Nil(), nil
	case tokenError:
		return Value{}, newParseError(p.cur.errKind, p.cur.pos, p.cur.literal)
	default:
		return Value{}, p.unexpected(p.cur)
	}
}

func (p *parser) parseTable(depth int) (Value, error) {
	open := p.cur.pos
	p.advance() // consume '{'

	table := Value{Kind: KindTable}
	nextIndex := 1

	for {
		switch p.cur.typ {
		case tokenRBrace:
			p.advance()
			return table, nil
		case tokenEOF:
			return Value{}, newParseError(ErrUnterminatedTable, open, "")
		case tokenError:
			return Value{}, newParseError(p.cur.errKind, p.cur.pos, p.cur.literal)
		}

		var key Key
		var val Value
		var err error

		if p.cur.typ == tokenIdent && p.next.typ == tokenAssign {
			key = Key{Name: p.cur.literal}
			p.advance() // identifier
			p.advance() // '='
			val, err = p.parseValue(depth + 1)
		} else {
			// Bare value in entry position: append to the implicit
			// positional view layered over the same node.
			key = Key{Index: nextIndex}
			nextIndex++
			val, err = p.parseValue(depth + 1)
		}
		if err != nil {
			return Value{}, err
		}
		table.set(key, val)

		switch p.cur.typ {
		case tokenComma:
			p.advance()
		case tokenRBrace:
			// Closing brace ends the table on the next loop pass; a
			// trailing comma before it is equally legal.
		case tokenEOF:
			return Value{}, newParseError(ErrUnterminatedTable, open, "")
		default:
			return Value{}, p.unexpected(p.cur)
		}
	}
}

func (p *parser) unexpected(tok token) error {
	if tok.typ == tokenError {
		return newParseError(tok.errKind, tok.pos, tok.literal)
	}
	detail := tok.literal
	if tok.typ == tokenEOF {
		detail = "end of input"
	}
	return newParseError(ErrUnexpectedToken, tok.pos, detail)
}

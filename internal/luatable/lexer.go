package luatable

import "strings"

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenError
	tokenLBrace
	tokenRBrace
	tokenComma
	tokenAssign
	tokenIdent
	tokenNumber
	tokenString
	tokenTrue
	tokenFalse
	tokenNil
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenError:
		return "ERROR"
	case tokenLBrace:
		return "{"
	case tokenRBrace:
		return "}"
	case tokenComma:
		return ","
	case tokenAssign:
		return "="
	case tokenIdent:
		return "identifier"
	case tokenNumber:
		return "number"
	case tokenString:
		return "string"
	case tokenTrue:
		return "true"
	case tokenFalse:
		return "false"
	case tokenNil:
		return "nil"
	default:
		return "unknown"
	}
}

type token struct {
	typ     tokenType
	literal string
	pos     int
	errKind ErrorKind // set when typ == tokenError
}

// lexer tokenizes literal text byte by byte. Identifiers and numbers in the
// catalog format are plain ASCII; multi-byte runes only occur inside quoted
// strings, where they are copied through untouched.
type lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// skipIgnored consumes whitespace and "--" line comments.
func (l *lexer) skipIgnored() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *lexer) next() token {
	l.skipIgnored()

	start := l.pos
	switch {
	case l.ch == 0:
		return token{typ: tokenEOF, pos: start}
	case l.ch == '{':
		l.readChar()
		return token{typ: tokenLBrace, literal: "{", pos: start}
	case l.ch == '}':
		l.readChar()
		return token{typ: tokenRBrace, literal: "}", pos: start}
	case l.ch == ',':
		l.readChar()
		return token{typ: tokenComma, literal: ",", pos: start}
	case l.ch == '=':
		l.readChar()
		return token{typ: tokenAssign, literal: "=", pos: start}
	case l.ch == '"' || l.ch == '\'':
		return l.scanString()
	case l.ch == '+' || l.ch == '-' || l.ch == '.' || isDigit(l.ch):
		return l.scanNumber()
	case isIdentStart(l.ch):
		return l.scanIdent()
	default:
		tok := token{typ: tokenError, literal: string(l.ch), pos: start, errKind: ErrUnexpectedToken}
		l.readChar()
		return tok
	}
}

func (l *lexer) scanIdent() token {
	start := l.pos
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.pos]
	switch word {
	case "true":
		return token{typ: tokenTrue, literal: word, pos: start}
	case "false":
		return token{typ: tokenFalse, literal: word, pos: start}
	case "nil":
		return token{typ: tokenNil, literal: word, pos: start}
	}
	return token{typ: tokenIdent, literal: word, pos: start}
}

func (l *lexer) scanString() token {
	start := l.pos
	quote := l.ch
	l.readChar()

	var b strings.Builder
	for {
		switch l.ch {
		case 0:
			return token{typ: tokenError, literal: b.String(), pos: start, errKind: ErrUnterminatedString}
		case quote:
			l.readChar()
			return token{typ: tokenString, literal: b.String(), pos: start}
		case '\\':
			l.readChar()
			switch l.ch {
			case 0:
				return token{typ: tokenError, literal: b.String(), pos: start, errKind: ErrUnterminatedString}
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				// Quote, backslash, and anything else is taken literally.
				b.WriteByte(l.ch)
			}
			l.readChar()
		default:
			b.WriteByte(l.ch)
			l.readChar()
		}
	}
}

func (l *lexer) scanNumber() token {
	start := l.pos
	if l.ch == '+' || l.ch == '-' {
		l.readChar()
	}

	digits := 0
	for isDigit(l.ch) {
		digits++
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			digits++
			l.readChar()
		}
	}
	if digits == 0 {
		return token{typ: tokenError, literal: l.input[start:l.pos], pos: start, errKind: ErrMalformedNumber}
	}
	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		expDigits := 0
		for isDigit(l.ch) {
			expDigits++
			l.readChar()
		}
		if expDigits == 0 {
			return token{typ: tokenError, literal: l.input[start:l.pos], pos: start, errKind: ErrMalformedNumber}
		}
	}
	return token{typ: tokenNumber, literal: l.input[start:l.pos], pos: start}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

package luatable

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	ErrUnexpectedToken ErrorKind = iota + 1
	ErrUnterminatedString
	ErrUnterminatedTable
	ErrMalformedNumber
	ErrNestingTooDeep
)

// String returns the human-readable kind label.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrUnterminatedString:
		return "unterminated string"
	case ErrUnterminatedTable:
		return "unterminated table"
	case ErrMalformedNumber:
		return "malformed number"
	case ErrNestingTooDeep:
		return "nesting too deep"
	default:
		return "unknown"
	}
}

// ParseError reports a syntax error in the literal text. Offset is the byte
// position in the input where the problem was detected.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

func newParseError(kind ErrorKind, offset int, detail string) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Detail: detail}
}

package luatable

import (
	"strconv"
	"strings"
)

// Kind identifies the variant stored in a Value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindTable
)

// String returns the kind label used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Key identifies one table entry: a named field when Name is non-empty, or a
// synthesized 1-based position for bare array-style values.
type Key struct {
	Name  string
	Index int
}

// IsIndex reports whether the key is a synthesized positional index.
func (k Key) IsIndex() bool { return k.Name == "" }

// String renders the key the way it appeared (or would appear) in source.
func (k Key) String() string {
	if k.IsIndex() {
		return strconv.Itoa(k.Index)
	}
	return k.Name
}

// Entry is a single key/value pair inside a table node.
type Entry struct {
	Key   Key
	Value Value
}

// Value is one node of a parsed literal tree. Exactly one of the payload
// fields is meaningful, selected by Kind. Table entries preserve source
// order; keys are unique within one node (duplicates are resolved
// last-seen-wins during parsing).
type Value struct {
	Kind    Kind
	Bool    bool
	Number  float64
	Str     string
	Entries []Entry
}

// Nil returns the nil value.
func Nil() Value { return Value{Kind: KindNil} }

// BoolValue wraps a boolean scalar.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue wraps a numeric scalar.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// StringValue wraps a string scalar.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// Table builds a table node from the given entries.
func Table(entries ...Entry) Value { return Value{Kind: KindTable, Entries: entries} }

// Field returns the value stored under the named key.
func (v Value) Field(name string) (Value, bool) {
	if v.Kind != KindTable {
		return Value{}, false
	}
	for _, e := range v.Entries {
		if e.Key.Name == name {
			return e.Value, true
		}
	}
	return Value{}, false
}

// At returns the value stored under the synthesized positional index
// (1-based, matching Lua array conventions).
func (v Value) At(index int) (Value, bool) {
	if v.Kind != KindTable {
		return Value{}, false
	}
	for _, e := range v.Entries {
		if e.Key.IsIndex() && e.Key.Index == index {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of entries in a table node, zero otherwise.
func (v Value) Len() int {
	if v.Kind != KindTable {
		return 0
	}
	return len(v.Entries)
}

// set inserts or replaces an entry. On a duplicate key the existing slot
// keeps its position and takes the new value (last-seen-wins).
func (v *Value) set(key Key, val Value) {
	for i := range v.Entries {
		if v.Entries[i].Key == key {
			v.Entries[i].Value = val
			return
		}
	}
	v.Entries = append(v.Entries, Entry{Key: key, Value: val})
}

// String re-serializes the tree in source form. Entry order is insertion
// order, so the output is deterministic; it is intended for diagnostics and
// round-trip tests, not for writing back to a catalog.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.Kind {
	case KindNil:
		b.WriteString("nil")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.Number, 'g', -1, 64))
	case KindString:
		b.WriteByte('"')
		b.WriteString(escapeString(v.Str))
		b.WriteByte('"')
	case KindTable:
		b.WriteByte('{')
		for i, e := range v.Entries {
			if i > 0 {
				b.WriteString(", ")
			}
			if !e.Key.IsIndex() {
				b.WriteString(e.Key.Name)
				b.WriteString(" = ")
			}
			e.Value.write(b)
		}
		b.WriteByte('}')
	}
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

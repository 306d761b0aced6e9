package luatable

import (
	"errors"
	"math"
	"testing"
)

func TestParseEmptyTable(t *testing.T) {
	t.Parallel()
	v, err := Parse("{}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Kind != KindTable || v.Len() != 0 {
		t.Fatalf("expected empty table, got kind=%s len=%d", v.Kind, v.Len())
	}
}

func TestParseTrailingComma(t *testing.T) {
	t.Parallel()
	v, err := Parse("{a=1,}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Len() != 1 {
		t.Fatalf("expected one entry, got %d", v.Len())
	}
	field, ok := v.Field("a")
	if !ok || field.Kind != KindNumber || field.Number != 1 {
		t.Fatalf("field a mismatch: %+v ok=%v", field, ok)
	}
}

func TestParseScalars(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		input string
		check func(t *testing.T, v Value)
	}{
		{"number", "{a = 0.667}", func(t *testing.T, v Value) {
			f, _ := v.Field("a")
			if f.Number != 0.667 {
				t.Fatalf("got %v", f.Number)
			}
		}},
		{"negative exponent", "{a = -1.5e-2}", func(t *testing.T, v Value) {
			f, _ := v.Field("a")
			if f.Number != -1.5e-2 {
				t.Fatalf("got %v", f.Number)
			}
		}},
		{"leading plus", "{a = +12}", func(t *testing.T, v Value) {
			f, _ := v.Field("a")
			if f.Number != 12 {
				t.Fatalf("got %v", f.Number)
			}
		}},
		{"leading dot", "{a = .5}", func(t *testing.T, v Value) {
			f, _ := v.Field("a")
			if f.Number != 0.5 {
				t.Fatalf("got %v", f.Number)
			}
		}},
		{"double quoted", `{a = "hi"}`, func(t *testing.T, v Value) {
			f, _ := v.Field("a")
			if f.Kind != KindString || f.Str != "hi" {
				t.Fatalf("got %+v", f)
			}
		}},
		{"single quoted", `{a = 'hi'}`, func(t *testing.T, v Value) {
			f, _ := v.Field("a")
			if f.Str != "hi" {
				t.Fatalf("got %+v", f)
			}
		}},
		{"escapes", `{a = "say \"hi\"\n\t\\"}`, func(t *testing.T, v Value) {
			f, _ := v.Field("a")
			if f.Str != "say \"hi\"\n\t\\" {
				t.Fatalf("got %q", f.Str)
			}
		}},
		{"booleans and nil", "{a = true, b = false, c = nil}", func(t *testing.T, v Value) {
			a, _ := v.Field("a")
			b, _ := v.Field("b")
			c, _ := v.Field("c")
			if !a.Bool || b.Bool || c.Kind != KindNil {
				t.Fatalf("got a=%+v b=%+v c=%+v", a, b, c)
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			tc.check(t, v)
		})
	}
}

func TestParseComments(t *testing.T) {
	t.Parallel()
	input := "{ -- leading comment\n a = 1, -- trailing comment\n b = 2 }"
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Len() != 2 {
		t.Fatalf("expected two entries, got %d", v.Len())
	}
}

func TestParseMixedArrayAndMap(t *testing.T) {
	t.Parallel()
	v, err := Parse(`{version = 2, "first", "second", label = "x", "third"}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Len() != 5 {
		t.Fatalf("expected five entries, got %d", v.Len())
	}
	for i, want := range []string{"first", "second", "third"} {
		got, ok := v.At(i + 1)
		if !ok || got.Str != want {
			t.Fatalf("positional %d: got %+v ok=%v want %q", i+1, got, ok, want)
		}
	}
	if f, ok := v.Field("label"); !ok || f.Str != "x" {
		t.Fatalf("named lookup on mixed table failed: %+v ok=%v", f, ok)
	}
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	t.Parallel()
	v, err := Parse("{a = 1, b = 2, a = 3}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Len() != 2 {
		t.Fatalf("duplicate key must not add an entry, got %d entries", v.Len())
	}
	if f, _ := v.Field("a"); f.Number != 3 {
		t.Fatalf("expected last-seen value 3, got %v", f.Number)
	}
}

func TestParseBareScalarTopLevel(t *testing.T) {
	t.Parallel()
	v, err := Parse("42")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Kind != KindNumber || v.Number != 42 {
		t.Fatalf("got %+v", v)
	}
}

func TestParseDeepNesting(t *testing.T) {
	t.Parallel()
	const depth = 64
	input := ""
	for i := 0; i < depth; i++ {
		input += "{inner="
	}
	input += "1"
	for i := 0; i < depth; i++ {
		input += "}"
	}
	if _, err := Parse(input); err != nil {
		t.Fatalf("depth %d must parse, got %v", depth, err)
	}
}

func TestParseNestingLimit(t *testing.T) {
	t.Parallel()
	input := ""
	for i := 0; i < maxDepth+2; i++ {
		input += "{"
	}
	_, err := Parse(input)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != ErrNestingTooDeep {
		t.Fatalf("expected nesting error, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		input  string
		kind   ErrorKind
		offset int
	}{
		{"unterminated table", "{a = 1", ErrUnterminatedTable, 0},
		{"unterminated string", `{a = "oops`, ErrUnterminatedString, 5},
		{"malformed exponent", "{a = 1e}", ErrMalformedNumber, 5},
		{"bare sign", "{a = -}", ErrMalformedNumber, 5},
		{"unexpected token", "{a = 1 b = 2}", ErrUnexpectedToken, 7},
		{"stray character", "{a = ?}", ErrUnexpectedToken, 5},
		{"missing value", "{a = }", ErrUnexpectedToken, 5},
		{"not a literal", "{a = 1} extra", ErrUnexpectedToken, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.input)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Kind != tc.kind {
				t.Fatalf("kind: got %s want %s (%v)", pe.Kind, tc.kind, err)
			}
			if pe.Offset != tc.offset {
				t.Fatalf("offset: got %d want %d (%v)", pe.Offset, tc.offset, err)
			}
		})
	}
}

func TestParseRealWorldShape(t *testing.T) {
	t.Parallel()
	input := `{
	ProcessVersion = "11.0",
	Exposure2012 = 0.65,
	Contrast2012 = -12,
	ToneCurvePV2012 = {0, 0, 128, 131, 255, 255,},
	ConvertToGrayscale = false,
	CameraProfile = "Adobe Standard",
}`
	v, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if f, _ := v.Field("Exposure2012"); f.Number != 0.65 {
		t.Fatalf("Exposure2012: got %v", f.Number)
	}
	curve, ok := v.Field("ToneCurvePV2012")
	if !ok || curve.Len() != 6 {
		t.Fatalf("ToneCurvePV2012: got %+v ok=%v", curve, ok)
	}
	if pt, _ := curve.At(4); pt.Number != 131 {
		t.Fatalf("curve point 4: got %v", pt.Number)
	}
}

func TestValueStringRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"{}",
		"{a = 1, b = {c = true, nil, -2.5}, \"x\"}",
		`{s = "quote \" and backslash \\"}`,
	}
	for _, input := range inputs {
		first, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", first.String(), err)
		}
		if !valuesEqual(first, second) {
			t.Fatalf("round trip mismatch:\n first: %s\nsecond: %s", first, second)
		}
	}
}

func valuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Number == b.Number || (math.IsNaN(a.Number) && math.IsNaN(b.Number))
	case KindString:
		return a.Str == b.Str
	case KindTable:
		if len(a.Entries) != len(b.Entries) {
			return false
		}
		for i := range a.Entries {
			if a.Entries[i].Key != b.Entries[i].Key {
				return false
			}
			if !valuesEqual(a.Entries[i].Value, b.Entries[i].Value) {
				return false
			}
		}
	}
	return true
}

package develop

import (
	"strconv"
	"strings"

	"devset/internal/luatable"
	"devset/internal/sliders"
)

// nestedNamespaces lists sub-table keys whose immediate children are also
// scanned for slider aliases. Older catalogs namespace some sliders one
// level down; only one level is ever descended.
var nestedNamespaces = []string{"settings", "Look", "Parameters"}

// DecodeText strips the "s = " assignment prefix the catalog stores in
// front of the blob, parses the literal, and decodes it. The raw text column
// is authoritative; XMP-derived values are never consulted here.
func DecodeText(text string, reg *sliders.Registry) (sliders.Vector, error) {
	tree, err := luatable.Parse(StripAssignmentPrefix(text))
	if err != nil {
		return nil, err
	}
	return Decode(tree, reg), nil
}

// Decode walks the top-level table (plus one level of known nested
// namespaces) and resolves every aliased entry into a canonical slider
// value. It never fails: unknown and malformed entries are simply absent
// from the result.
func Decode(tree luatable.Value, reg *sliders.Registry) sliders.Vector {
	vector := make(sliders.Vector)
	if tree.Kind != luatable.KindTable {
		return vector
	}

	decodeEntries(tree, reg, vector)
	for _, ns := range nestedNamespaces {
		if sub, ok := tree.Field(ns); ok && sub.Kind == luatable.KindTable {
			decodeEntries(sub, reg, vector)
		}
	}
	return vector
}

func decodeEntries(table luatable.Value, reg *sliders.Registry, vector sliders.Vector) {
	for _, entry := range table.Entries {
		if entry.Key.IsIndex() {
			continue
		}
		def, ok := reg.Lookup(entry.Key.Name)
		if !ok {
			continue
		}
		raw, ok := numericValue(entry.Value)
		if !ok {
			continue
		}
		// Last-seen-wins when several aliases of the same slider appear in
		// one record.
		vector[def.ID] = sliders.Coerce(def, raw)
	}
}

// numericValue coerces a scalar node to a number. Strings holding numeric
// text count as numeric; everything else means "not present".
func numericValue(v luatable.Value) (float64, bool) {
	switch v.Kind {
	case luatable.KindNumber:
		return v.Number, true
	case luatable.KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// StripAssignmentPrefix removes a leading "<ident> = " wrapper. Catalogs
// store the blob as a Lua assignment statement, usually "s = {...}".
func StripAssignmentPrefix(text string) string {
	trimmed := strings.TrimLeft(text, " \t\r\n")
	i := 0
	for i < len(trimmed) {
		c := trimmed[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (i > 0 && c >= '0' && c <= '9') {
			i++
			continue
		}
		break
	}
	if i == 0 {
		return text
	}
	rest := strings.TrimLeft(trimmed[i:], " \t")
	if !strings.HasPrefix(rest, "=") {
		return text
	}
	return strings.TrimLeft(rest[1:], " \t\r\n")
}

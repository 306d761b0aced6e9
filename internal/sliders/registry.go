package sliders

import (
	"fmt"
	"math"
)

// ValueType distinguishes the two coercion rules a slider can follow.
type ValueType int

const (
	// Integer sliders only accept whole-number values.
	Integer ValueType = iota + 1
	// Continuous sliders accept any value on their step grid.
	Continuous
)

// String returns the type label used in CLI output.
func (t ValueType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Continuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Definition describes one canonical slider: its stable identity, the raw
// key spellings that resolve to it, and its value domain.
type Definition struct {
	ID           string
	FriendlyName string
	Aliases      []string
	Type         ValueType
	Min          float64
	Max          float64
	Step         float64
	Default      float64
}

// Registry maps raw key aliases to canonical slider definitions. Immutable
// after construction.
type Registry struct {
	defs       []Definition
	byAlias    map[string]int
	byFriendly map[string]int
}

// NewRegistry validates the definitions and builds the alias index. Alias
// collisions and malformed domains are configuration errors: the process
// must not start with a broken schema.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		defs:       make([]Definition, len(defs)),
		byAlias:    make(map[string]int, len(defs)*2),
		byFriendly: make(map[string]int, len(defs)),
	}
	copy(r.defs, defs)

	for i, def := range r.defs {
		if def.ID == "" {
			return nil, fmt.Errorf("slider %d: empty canonical id", i)
		}
		if def.Step <= 0 {
			return nil, fmt.Errorf("slider %s: step must be positive, got %v", def.ID, def.Step)
		}
		if def.Min > def.Max {
			return nil, fmt.Errorf("slider %s: min %v exceeds max %v", def.ID, def.Min, def.Max)
		}
		if def.Default < def.Min || def.Default > def.Max {
			return nil, fmt.Errorf("slider %s: default %v outside [%v, %v]", def.ID, def.Default, def.Min, def.Max)
		}
		if def.Type == Integer {
			for _, v := range []float64{def.Min, def.Max, def.Step, def.Default} {
				if v != math.Trunc(v) {
					return nil, fmt.Errorf("slider %s: integer slider has fractional domain value %v", def.ID, v)
				}
			}
		}

		for _, alias := range appendCanonicalAliases(def) {
			if prev, exists := r.byAlias[alias]; exists && prev != i {
				return nil, fmt.Errorf("alias %q claimed by both %s and %s", alias, r.defs[prev].ID, def.ID)
			}
			r.byAlias[alias] = i
		}
		if prev, exists := r.byFriendly[def.FriendlyName]; exists {
			return nil, fmt.Errorf("friendly name %q claimed by both %s and %s", def.FriendlyName, r.defs[prev].ID, def.ID)
		}
		r.byFriendly[def.FriendlyName] = i
	}
	return r, nil
}

// NewBuiltin builds a registry from the static definition table.
func NewBuiltin() (*Registry, error) {
	return NewRegistry(builtinDefinitions)
}

// appendCanonicalAliases ensures the canonical id and friendly name always
// resolve, in addition to the declared aliases.
func appendCanonicalAliases(def Definition) []string {
	aliases := make([]string, 0, len(def.Aliases)+2)
	aliases = append(aliases, def.ID)
	if def.FriendlyName != "" && def.FriendlyName != def.ID {
		aliases = append(aliases, def.FriendlyName)
	}
	for _, alias := range def.Aliases {
		if alias == def.ID || alias == def.FriendlyName {
			continue
		}
		aliases = append(aliases, alias)
	}
	return aliases
}

// Lookup resolves a raw key alias to its owning definition.
func (r *Registry) Lookup(alias string) (Definition, bool) {
	i, ok := r.byAlias[alias]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// ByFriendlyName resolves a dataset column name to its definition.
func (r *Registry) ByFriendlyName(name string) (Definition, bool) {
	i, ok := r.byFriendly[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// All returns the definitions in declaration order.
func (r *Registry) All() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of registered sliders.
func (r *Registry) Len() int { return len(r.defs) }

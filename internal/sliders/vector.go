package sliders

// Vector maps canonical slider ids to raw values for one image. Sliders the
// decoder could not resolve are absent rather than zero-filled, so callers
// can tell "not written by Lightroom" apart from "written as zero".
type Vector map[string]float64

// Get returns the raw value for a canonical id.
func (v Vector) Get(id string) (float64, bool) {
	val, ok := v[id]
	return val, ok
}

// Has reports whether the slider was resolved for this image.
func (v Vector) Has(id string) bool {
	_, ok := v[id]
	return ok
}

// Normalized returns a new map of training targets in [-1, 1] for every
// resolved slider, using the domains from the registry. Sliders whose
// canonical id is not in the registry are skipped.
func (v Vector) Normalized(reg *Registry) map[string]float64 {
	out := make(map[string]float64, len(v))
	for id, raw := range v {
		def, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		out[id] = Normalize(def, raw)
	}
	return out
}

package sliders

import "math"

// Normalize rescales a raw slider value from [min, max] to [-1, 1]. Values
// outside the domain are clamped first, so the result never leaves [-1, 1]
// even when upstream coercion was skipped.
func Normalize(def Definition, raw float64) float64 {
	if def.Max <= def.Min {
		return 0
	}
	raw = Clamp(def, raw)
	return 2*(raw-def.Min)/(def.Max-def.Min) - 1
}

// Denormalize maps a [-1, 1] training value back onto the slider's domain
// and quantizes it to the step grid. For a value whose pre-image lies
// exactly on the grid the round trip is exact; anything else lands on the
// nearest grid point. That quantization is the contract, not an artifact.
func Denormalize(def Definition, normalized float64) float64 {
	if def.Max <= def.Min {
		return def.Min
	}
	if normalized < -1 {
		normalized = -1
	} else if normalized > 1 {
		normalized = 1
	}
	raw := def.Min + (normalized+1)/2*(def.Max-def.Min)
	return Coerce(def, raw)
}

// Coerce snaps a raw value onto the slider's step grid from min, applies
// whole-number rounding for Integer sliders (ties away from zero), and
// clamps into [min, max]. Shared by the settings decoder and Denormalize so
// both produce identical grid values.
func Coerce(def Definition, raw float64) float64 {
	// Whole-number rounding happens before the grid snap so that .5 ties
	// resolve away from zero rather than away from min.
	if def.Type == Integer {
		raw = math.Round(raw)
	}
	if def.Step > 0 {
		steps := math.Round((raw - def.Min) / def.Step)
		raw = def.Min + steps*def.Step
		if def.Type == Integer {
			raw = math.Round(raw)
		}
	}
	return Clamp(def, raw)
}

// Clamp bounds a value into the slider's [min, max] domain.
func Clamp(def Definition, v float64) float64 {
	if v < def.Min {
		return def.Min
	}
	if v > def.Max {
		return def.Max
	}
	return v
}

// Package develop extracts canonical slider vectors from parsed
// develop-settings trees.
//
// Decoding is deliberately forgiving: unknown keys are skipped so new
// Lightroom fields cannot break ingest, non-numeric or nil values leave the
// slider absent rather than zero, and duplicate aliases resolve
// last-seen-wins. The only error a caller ever sees is a syntax error from
// the literal parser itself.
package develop

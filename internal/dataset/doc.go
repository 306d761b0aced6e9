// Package dataset joins decoded slider vectors with resolved preview files
// into training-dataset rows.
//
// Assemble fans decoding out across a worker pool (the parser and decoder
// are pure, so records decode in parallel with no locking) and fans results
// back in so output rows keep catalog order. Records whose settings blob
// fails to parse and records without a resolvable preview are counted
// separately, so callers can report the two failure classes independently;
// neither aborts a run.
package dataset

// Package previews resolves catalog image stems to preview files on disk.
//
// The Resolver indexes a preview root once (recursive, case-insensitive,
// extension-agnostic) and answers stem lookups deterministically: when
// several files share a stem, the shortest relative path wins, with
// lexicographic order breaking remaining ties. The package also enumerates
// RAW source files so ingest reports can state preview coverage; actual
// RAW decoding happens outside this repository.
package previews

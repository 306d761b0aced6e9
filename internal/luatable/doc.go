// Package luatable parses the Lua-table-like literal text that Lightroom
// stores in the Adobe_imageDevelopSettings.text column.
//
// The grammar is a small subset of Lua: nested brace tables whose entries are
// either identifier=value pairs or bare positional values, single- and
// double-quoted strings with backslash escapes, signed floating-point
// numbers, booleans, and nil. Whitespace and "--" line comments are skipped
// between tokens.
//
// A parsed Value is a generic tree with no slider knowledge; tables keep
// their entries in source order and layer positional indexes over the same
// node so mixed map/array tables survive a round trip. Syntax errors carry a
// distinct kind and the byte offset where the problem was detected.
package luatable

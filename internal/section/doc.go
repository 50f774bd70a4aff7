// Package section defines the closed set of dashboard sections a motd
// document may contain, the registry that maps document keys to them, and
// the schema that decodes each section's value.
//
// Section values arrive as generic nodes produced by the document parsers:
// map[string]any for tables, []any for arrays, string, bool, float64, any
// signed or unsigned integer type, or nil. Each schema is a pure function
// from such a node to a typed [Value]; failures are reported as
// [*DecodeError].
//
// Adding a section kind means extending [Kind], the registry table, [Decode],
// and the slot set in package ordered. The tests in this package and in
// ordered iterate [Kinds] to catch a kind that was only partially wired.
package section

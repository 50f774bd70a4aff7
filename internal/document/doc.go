// Package document turns a dashboard document into a [Cursor]: an ordered
// stream of top-level (key, value) pairs that preserves the order in which
// keys physically appear in the source text.
//
// Two syntaxes are supported. TOML documents are decoded with
// github.com/pelletier/go-toml/v2, whose unstable AST parser is walked a
// second time to recover key order. YAML documents are decoded into a
// yaml.Node tree, whose mapping content is already ordered.
//
// Values are handed out as generic nodes: map[string]any, []any, string,
// bool, float64, integers, time values, or nil.
package document

package document

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/thoreinstein/motd/internal/errors"
)

// NewTOMLCursor parses a TOML document.
//
// Root keys are ordered by their first appearance, whether introduced as a
// root key/value pair, a dotted key, a [table] header or an [[array]] header.
// TOML forbids redefining a key, so every root key is yielded once.
func NewTOMLCursor(data []byte) (*EntryCursor, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "parsing TOML document")
	}

	order, err := tomlKeyOrder(data)
	if err != nil {
		return nil, errors.Wrap(err, "scanning TOML key order")
	}

	entries := make([]Entry, 0, len(order))
	for _, key := range order {
		entries = append(entries, Entry{Key: key, Value: root[key]})
	}
	return NewEntryCursor(entries...), nil
}

// tomlKeyOrder walks the expression stream and records the first component
// of every key that lands at the document root.
func tomlKeyOrder(data []byte) ([]string, error) {
	var p unstable.Parser
	p.Reset(data)

	seen := make(map[string]bool)
	var order []string
	inTable := false

	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			inTable = true
		case unstable.KeyValue:
			if inTable {
				continue
			}
		default:
			continue
		}

		it := expr.Key()
		if !it.Next() {
			continue
		}
		key := string(it.Node().Data)
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}

	if err := p.Error(); err != nil {
		return nil, err
	}
	return order, nil
}

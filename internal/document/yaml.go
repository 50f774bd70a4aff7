package document

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/motd/internal/errors"
)

// ErrRootNotMapping indicates the document root is a scalar or sequence.
var ErrRootNotMapping = errors.New("document root is not a mapping")

// YAMLCursor walks the root mapping of a YAML document. Values are decoded
// lazily as the cursor advances.
type YAMLCursor struct {
	pairs []*yaml.Node
	idx   int
	key   string
	value any
	err   error
}

var _ Cursor = (*YAMLCursor)(nil)

// NewYAMLCursor parses a YAML document. An empty or null document yields a
// cursor with no keys. Repeated keys are yielded as they appear.
func NewYAMLCursor(data []byte) (*YAMLCursor, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "parsing YAML document")
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return &YAMLCursor{idx: -2}, nil
		}
		node = node.Content[0]
	}

	switch {
	case node.Kind == 0:
		return &YAMLCursor{idx: -2}, nil
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		return &YAMLCursor{idx: -2}, nil
	case node.Kind != yaml.MappingNode:
		return nil, errors.Wrapf(ErrRootNotMapping, "line %d", node.Line)
	}

	return &YAMLCursor{pairs: node.Content, idx: -2}, nil
}

func (c *YAMLCursor) Next() bool {
	if c.err != nil {
		return false
	}
	c.idx += 2
	if c.idx+1 >= len(c.pairs) {
		c.key, c.value = "", nil
		return false
	}

	keyNode, valueNode := c.pairs[c.idx], c.pairs[c.idx+1]
	if keyNode.Kind != yaml.ScalarNode {
		c.err = errors.Newf("line %d: mapping key must be a scalar", keyNode.Line)
		return false
	}

	var v any
	if err := valueNode.Decode(&v); err != nil {
		c.err = errors.Wrapf(err, "decoding value of %q", keyNode.Value)
		return false
	}

	c.key = keyNode.Value
	c.value = normalizeYAML(v)
	return true
}

func (c *YAMLCursor) Key() string { return c.key }
func (c *YAMLCursor) Value() any  { return c.value }
func (c *YAMLCursor) Err() error  { return c.err }

// normalizeYAML rewrites mappings with non-string keys into
// map[string]any so section schemas see one table shape.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			x[k] = normalizeYAML(child)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, child := range x {
			out[fmt.Sprint(k)] = normalizeYAML(child)
		}
		return out
	case []any:
		for i, child := range x {
			x[i] = normalizeYAML(child)
		}
		return x
	default:
		return v
	}
}

package ordered

import (
	"github.com/thoreinstein/motd/internal/document"
	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/section"
)

type options struct {
	strict bool
}

// Option adjusts decoding policy.
type Option func(*options)

// WithStrict rejects unrecognized and repeated section keys instead of
// skipping or overwriting them.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Decode consumes c and builds a Config. The cursor is not retained.
func Decode(c document.Cursor, opts ...Option) (*Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := &Config{}
	position := 0

	for ; c.Next(); position++ {
		key := c.Key()

		kind, ok := section.Lookup(key)
		if !ok {
			if o.strict {
				return nil, &section.DecodeError{
					Code:     section.CodeUnknownSection,
					Key:      key,
					Position: position,
				}
			}
			cfg.Skipped = append(cfg.Skipped, key)
			continue
		}

		if o.strict && cfg.has(kind) {
			return nil, &section.DecodeError{
				Code:     section.CodeDuplicateSection,
				Kind:     kind,
				Key:      key,
				Position: position,
			}
		}

		v, err := section.Decode(kind, c.Value())
		if err != nil {
			var decErr *section.DecodeError
			if errors.As(err, &decErr) {
				decErr.Key = key
				decErr.Position = position
				return nil, decErr
			}
			return nil, errors.Wrapf(err, "decoding section %q", key)
		}

		if !cfg.set(position, v) {
			return nil, errors.Newf("section %q decoded to unexpected %T", key, v)
		}
	}

	if err := c.Err(); err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	if position == 0 {
		return nil, &section.DecodeError{Code: section.CodeEmptyDocument, Position: -1}
	}

	return cfg, nil
}

// Load reads and decodes the document at path.
func Load(path string, opts ...Option) (*Config, error) {
	c, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(c, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return cfg, nil
}

package document

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/pkg/fileutil"
)

// Format is a document syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf("unsupported document format %q (valid: toml, yaml)", s)
	}
}

// FormatFromPath picks a format from the file extension, defaulting to TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse returns a cursor over data in the given format.
func Parse(data []byte, format Format) (Cursor, error) {
	switch format {
	case FormatYAML:
		c, err := NewYAMLCursor(data)
		if err != nil {
			return nil, err
		}
		return c, nil
	case FormatTOML, "":
		c, err := NewTOMLCursor(data)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, errors.Newf("unsupported document format %q", string(format))
	}
}

// Load reads the document at path and returns a cursor over it.
func Load(path string) (Cursor, error) {
	data, err := fileutil.ReadFileWithLimit(path, fileutil.MaxDocumentSize)
	if err != nil {
		return nil, errors.Wrapf(err, "reading document %s", path)
	}
	c, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return c, nil
}

package section

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Value is a decoded section payload.
type Value interface {
	Kind() Kind
}

// Banner prints the output of Command in Color.
type Banner struct {
	Color   Color
	Command string
}

// Docker maps container names to display labels.
type Docker map[string]string

// LastLogin maps user names to the number of recent logins to show.
type LastLogin map[string]int

// LastRun carries no fields; its presence enables the section.
type LastRun struct{}

// Filesystems maps display names to mount points.
type Filesystems map[string]string

func (Banner) Kind() Kind      { return KindBanner }
func (Docker) Kind() Kind      { return KindDocker }
func (LastLogin) Kind() Kind   { return KindLastLogin }
func (LastRun) Kind() Kind     { return KindLastRun }
func (Filesystems) Kind() Kind { return KindFilesystems }

// Decode runs the schema for kind against node.
func Decode(kind Kind, node any) (Value, error) {
	switch kind {
	case KindBanner:
		return DecodeBanner(node)
	case KindDocker:
		return DecodeDocker(node)
	case KindLastLogin:
		return DecodeLastLogin(node)
	case KindLastRun:
		return DecodeLastRun(node)
	case KindFilesystems:
		return DecodeFilesystems(node)
	default:
		return nil, errors.Newf("no schema for section kind %d", int(kind))
	}
}

// DecodeBanner requires a table with string fields "color" and "command".
// Other fields are ignored.
func DecodeBanner(node any) (Banner, error) {
	table, ok := node.(map[string]any)
	if !ok {
		return Banner{}, typeMismatch(KindBanner, "", "table", node)
	}

	rawColor, ok := table["color"]
	if !ok {
		return Banner{}, missingField(KindBanner, "color")
	}
	colorName, ok := rawColor.(string)
	if !ok {
		return Banner{}, typeMismatch(KindBanner, "color", "string", rawColor)
	}
	color, ok := ParseColor(colorName)
	if !ok {
		return Banner{}, &DecodeError{
			Code:     CodeUnknownColor,
			Kind:     KindBanner,
			Field:    "color",
			Expected: "one of the sixteen terminal colors",
			Actual:   colorName,
			Position: -1,
		}
	}

	rawCommand, ok := table["command"]
	if !ok {
		return Banner{}, missingField(KindBanner, "command")
	}
	command, ok := rawCommand.(string)
	if !ok {
		return Banner{}, typeMismatch(KindBanner, "command", "string", rawCommand)
	}

	return Banner{Color: color, Command: command}, nil
}

// DecodeDocker accepts a table of string values. An empty or null table
// yields an empty mapping.
func DecodeDocker(node any) (Docker, error) {
	m, err := stringMap(KindDocker, node)
	return Docker(m), err
}

// DecodeFilesystems accepts a table of string values, like DecodeDocker.
func DecodeFilesystems(node any) (Filesystems, error) {
	m, err := stringMap(KindFilesystems, node)
	return Filesystems(m), err
}

// DecodeLastLogin accepts a table of non-negative integers.
func DecodeLastLogin(node any) (LastLogin, error) {
	table, err := asTable(KindLastLogin, node)
	if err != nil {
		return nil, err
	}
	out := make(LastLogin, len(table))
	for user, raw := range table {
		n, ok := nonNegativeInt(raw)
		if !ok {
			return nil, typeMismatch(KindLastLogin, user, "non-negative integer", raw)
		}
		out[user] = n
	}
	return out, nil
}

// DecodeLastRun accepts a table, whose fields are ignored, or null.
func DecodeLastRun(node any) (LastRun, error) {
	if _, err := asTable(KindLastRun, node); err != nil {
		return LastRun{}, err
	}
	return LastRun{}, nil
}

// asTable treats null as an empty table.
func asTable(kind Kind, node any) (map[string]any, error) {
	switch t := node.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return t, nil
	default:
		return nil, typeMismatch(kind, "", "table", node)
	}
}

func stringMap(kind Kind, node any) (map[string]string, error) {
	t, err := asTable(kind, node)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(t))
	for k, raw := range t {
		s, ok := raw.(string)
		if !ok {
			return nil, typeMismatch(kind, k, "string", raw)
		}
		out[k] = s
	}
	return out, nil
}

func nonNegativeInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, n >= 0
	case int8:
		return int(n), n >= 0
	case int16:
		return int(n), n >= 0
	case int32:
		return int(n), n >= 0
	case int64:
		if n < 0 || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

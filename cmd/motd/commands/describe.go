package commands

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/thoreinstein/motd/internal/ordered"
	"github.com/thoreinstein/motd/internal/section"
)

// describeSection summarizes a section's settings, one field per line.
func describeSection(s ordered.Section) string {
	switch v := s.Value.(type) {
	case section.Banner:
		return fmt.Sprintf("color: %s\ncommand: %s", v.Color, v.Command)
	case section.Docker:
		return mapLines(v)
	case section.LastLogin:
		return mapLines(v)
	case section.Filesystems:
		return mapLines(v)
	case section.LastRun:
		return "prints the time the dashboard was drawn"
	default:
		return ""
	}
}

func mapLines[M ~map[string]V, V any](m M) string {
	if len(m) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(&b, "%s: %v\n", k, m[k])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

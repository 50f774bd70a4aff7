package ordered

import (
	"sort"

	"github.com/thoreinstein/motd/internal/section"
)

// Positioned is a decoded section value tagged with the zero-based index of
// its key among all keys in the document.
type Positioned[T section.Value] struct {
	Position int
	Value    T
}

// Config is the result of decoding a document. Absent sections are nil.
// A Config is not modified after Decode returns it.
type Config struct {
	Banner      *Positioned[section.Banner]
	Docker      *Positioned[section.Docker]
	LastLogin   *Positioned[section.LastLogin]
	LastRun     *Positioned[section.LastRun]
	Filesystems *Positioned[section.Filesystems]

	// Skipped lists unrecognized keys in document order.
	Skipped []string
}

// Section is a kind-erased view of one present slot.
type Section struct {
	Kind     section.Kind
	Position int
	Value    section.Value
}

// Get returns the slot for kind, if present.
func (c *Config) Get(kind section.Kind) (Section, bool) {
	switch kind {
	case section.KindBanner:
		return view(kind, c.Banner)
	case section.KindDocker:
		return view(kind, c.Docker)
	case section.KindLastLogin:
		return view(kind, c.LastLogin)
	case section.KindLastRun:
		return view(kind, c.LastRun)
	case section.KindFilesystems:
		return view(kind, c.Filesystems)
	default:
		return Section{}, false
	}
}

func view[T section.Value](kind section.Kind, p *Positioned[T]) (Section, bool) {
	if p == nil {
		return Section{}, false
	}
	return Section{Kind: kind, Position: p.Position, Value: p.Value}, true
}

// Sections returns the present slots sorted by position, which is the order
// the author wrote them in.
func (c *Config) Sections() []Section {
	var out []Section
	for _, kind := range section.Kinds() {
		if s, ok := c.Get(kind); ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// Len returns the number of present sections.
func (c *Config) Len() int {
	n := 0
	for _, kind := range section.Kinds() {
		if _, ok := c.Get(kind); ok {
			n++
		}
	}
	return n
}

// has reports whether the slot for kind is filled.
func (c *Config) has(kind section.Kind) bool {
	_, ok := c.Get(kind)
	return ok
}

// set stores v in the slot for its kind, replacing any earlier value.
func (c *Config) set(position int, v section.Value) bool {
	switch v := v.(type) {
	case section.Banner:
		c.Banner = &Positioned[section.Banner]{Position: position, Value: v}
	case section.Docker:
		c.Docker = &Positioned[section.Docker]{Position: position, Value: v}
	case section.LastLogin:
		c.LastLogin = &Positioned[section.LastLogin]{Position: position, Value: v}
	case section.LastRun:
		c.LastRun = &Positioned[section.LastRun]{Position: position, Value: v}
	case section.Filesystems:
		c.Filesystems = &Positioned[section.Filesystems]{Position: position, Value: v}
	default:
		return false
	}
	return true
}

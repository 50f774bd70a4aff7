package section

import (
	"strings"
	"unicode"
)

// Kind identifies one of the recognized top-level sections.
type Kind int

const (
	// KindInvalid is the zero Kind and never names a section.
	KindInvalid Kind = iota
	KindBanner
	KindDocker
	KindLastLogin
	KindLastRun
	KindFilesystems
)

// registry maps normalized document keys to section kinds.
var registry = map[string]Kind{
	"banner":      KindBanner,
	"docker":      KindDocker,
	"last_login":  KindLastLogin,
	"last_run":    KindLastRun,
	"filesystems": KindFilesystems,
}

// Kinds returns every valid section kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindBanner,
		KindDocker,
		KindLastLogin,
		KindLastRun,
		KindFilesystems,
	}
}

// String returns the canonical document key for the kind.
func (k Kind) String() string {
	switch k {
	case KindBanner:
		return "banner"
	case KindDocker:
		return "docker"
	case KindLastLogin:
		return "last_login"
	case KindLastRun:
		return "last_run"
	case KindFilesystems:
		return "filesystems"
	default:
		return "invalid"
	}
}

// Title returns a human-readable heading for the kind.
func (k Kind) Title() string {
	switch k {
	case KindBanner:
		return "Banner"
	case KindDocker:
		return "Docker"
	case KindLastLogin:
		return "Last Login"
	case KindLastRun:
		return "Last Run"
	case KindFilesystems:
		return "Filesystems"
	default:
		return "Invalid"
	}
}

// Lookup resolves a document key to a section kind.
// The key is normalized first, so "LastLogin", "last-login" and
// "LAST_LOGIN" all resolve to KindLastLogin.
func Lookup(key string) (Kind, bool) {
	k, ok := registry[Normalize(key)]
	return k, ok
}

// Normalize converts a key to lower snake_case.
// Surrounding whitespace is trimmed, camelCase boundaries become
// underscores, and '-' or ' ' are replaced with '_'.
func Normalize(s string) string {
	runes := []rune(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

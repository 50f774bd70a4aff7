package section

import "strings"

// Color is one of the sixteen named terminal colors a banner may use.
type Color int

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorLightBlack
	ColorLightRed
	ColorLightGreen
	ColorLightYellow
	ColorLightBlue
	ColorLightMagenta
	ColorLightCyan
	ColorLightWhite
)

var colorNames = [...]string{
	ColorBlack:        "black",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorLightBlack:   "light_black",
	ColorLightRed:     "light_red",
	ColorLightGreen:   "light_green",
	ColorLightYellow:  "light_yellow",
	ColorLightBlue:    "light_blue",
	ColorLightMagenta: "light_magenta",
	ColorLightCyan:    "light_cyan",
	ColorLightWhite:   "light_white",
}

// colorAliases maps every accepted normalized spelling to a color.
var colorAliases = buildColorAliases()

func buildColorAliases() map[string]Color {
	aliases := make(map[string]Color, len(colorNames)*4)
	for i, name := range colorNames {
		c := Color(i)
		aliases[name] = c
		if base, ok := strings.CutPrefix(name, "light_"); ok {
			aliases["light"+base] = c
			aliases["bright_"+base] = c
			aliases["bright"+base] = c
		}
	}
	aliases["gray"] = ColorLightBlack
	aliases["grey"] = ColorLightBlack
	return aliases
}

// Colors returns all sixteen colors.
func Colors() []Color {
	out := make([]Color, len(colorNames))
	for i := range colorNames {
		out[i] = Color(i)
	}
	return out
}

// ParseColor matches s against the color names and their aliases,
// ignoring case and separator style.
func ParseColor(s string) (Color, bool) {
	c, ok := colorAliases[Normalize(s)]
	return c, ok
}

// String returns the canonical snake_case name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// Light reports whether c is one of the light variants.
func (c Color) Light() bool {
	return c >= ColorLightBlack && c <= ColorLightWhite
}

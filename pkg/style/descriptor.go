// Package style turns theme descriptors into concrete lipgloss styles and
// computes the final style for each rendering operation.
//
// A descriptor is a small space-separated string: optional attributes
// (bold, dim, italic, underline, reverse, strikethrough) followed by a
// foreground color and an optional "on <color>" background, e.g.
// "bold white on #3b82f6". Unknown words are skipped rather than rejected;
// a typo in a theme should degrade the color, never crash the output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors maps the color names used by the built-in themes (and the
// common ANSI-16 set) to lipgloss color values. Hex values pass through
// untouched, so this table only needs the symbolic names.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",

	"bright_black":   "8",
	"gray":           "8",
	"grey":           "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",

	// Extended names the presets rely on.
	"purple":      "5",
	"dark_orange": "208",
	"grey66":      "#a8a8a8",
}

// Compile parses a descriptor string into a lipgloss.Style. The zero
// descriptor compiles to the unstyled lipgloss.NewStyle().
func Compile(descriptor string) lipgloss.Style {
	s := lipgloss.NewStyle()
	background := false

	for _, word := range strings.Fields(descriptor) {
		switch strings.ToLower(word) {
		case "bold":
			s = s.Bold(true)
		case "dim", "faint":
			s = s.Faint(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "reverse":
			s = s.Reverse(true)
		case "strikethrough", "strike":
			s = s.Strikethrough(true)
		case "blink":
			s = s.Blink(true)
		case "on":
			background = true
		default:
			color, ok := parseColor(word)
			if !ok {
				continue
			}
			if background {
				s = s.Background(color)
				background = false
			} else {
				s = s.Foreground(color)
			}
		}
	}

	return s
}

func parseColor(word string) (lipgloss.Color, bool) {
	w := strings.ToLower(word)
	if strings.HasPrefix(w, "#") {
		return lipgloss.Color(w), true
	}
	if v, ok := namedColors[w]; ok {
		return lipgloss.Color(v), true
	}
	// Bare 256-color indices ("208") are passed through.
	if isDigits(w) {
		return lipgloss.Color(w), true
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

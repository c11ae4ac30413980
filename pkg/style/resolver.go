package style

import (
	"strings"

	"github.com/arthur-debert/prettiprint/pkg/theme"
	"github.com/charmbracelet/lipgloss"
)

// eventRolePrefix marks the roles that fall back to "info" when a theme
// omits them, so every event level always renders with some color.
const eventRolePrefix = "event."

// Span is a run of text carrying one style descriptor. Renderers receive
// spans, never strings with embedded markup.
type Span struct {
	Text  string
	Style string
}

// Plain returns a span with no styling.
func Plain(text string) Span {
	return Span{Text: text}
}

// Resolver computes the final style descriptor for a role against the
// active merged theme mapping. It holds no other state; the console owns
// the mapping's lifecycle and swaps in a new Resolver on theme changes.
type Resolver struct {
	styles theme.Map
}

// NewResolver creates a Resolver over the given merged style mapping.
func NewResolver(styles theme.Map) *Resolver {
	return &Resolver{styles: styles}
}

// Resolve returns the descriptor for role. A non-empty explicit override
// wins outright and the theme is not consulted. Event roles absent from
// the mapping fall back to the "info" descriptor; any other unknown role
// resolves to the empty descriptor, which compiles to an unstyled span
// (a custom-theme authoring defect, unreachable for built-in themes).
func (r *Resolver) Resolve(role, override string) string {
	if override != "" {
		return override
	}
	if descriptor, ok := r.styles[role]; ok {
		return descriptor
	}
	if strings.HasPrefix(role, eventRolePrefix) {
		return r.styles["info"]
	}
	return ""
}

// Style resolves role and compiles the result.
func (r *Resolver) Style(role, override string) lipgloss.Style {
	return Compile(r.Resolve(role, override))
}

// Span builds a styled span for text using the resolved descriptor.
func (r *Resolver) Span(text, role, override string) Span {
	return Span{Text: text, Style: r.Resolve(role, override)}
}

// Package console is the public facade of prettiprint: themed, verbosity
// gated terminal output for CLI and operational tooling.
//
// Every rendering operation follows the same protocol: consult the
// verbosity gate (a denied call returns with zero output), resolve the
// required style roles against the active theme and any per-call
// overrides, mask secrets when asked to, then delegate drawing to the
// Renderer collaborator.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/prettiprint/pkg/logging"
	"github.com/arthur-debert/prettiprint/pkg/redact"
	"github.com/arthur-debert/prettiprint/pkg/render"
	"github.com/arthur-debert/prettiprint/pkg/style"
	"github.com/arthur-debert/prettiprint/pkg/theme"
)

// DefaultTheme is the preset used when no theme option is given.
const DefaultTheme = "dark"

const timestampLayout = "2006-01-02 15:04:05"

// Console renders structured output with consistent styling. Each Console
// owns its state independently; differently-themed instances can coexist
// in one process without synchronization.
type Console struct {
	renderer   render.Renderer
	input      render.Input
	resolver   *style.Resolver
	themeName  string
	verbosity  Level
	emoji      bool
	timestamps bool
	tracebacks bool
	now        func() time.Time
	log        zerolog.Logger
}

type settings struct {
	theme        string
	customStyles theme.Map
	verbosity    int
	emoji        bool
	timestamps   bool
	tracebacks   bool
	writer       io.Writer
	renderer     render.Renderer
	input        render.Input
	now          func() time.Time
}

// Option configures a Console at construction time.
type Option func(*settings)

// WithTheme selects the initial theme preset (case-insensitive).
func WithTheme(name string) Option {
	return func(s *settings) { s.theme = name }
}

// WithCustomStyles merges role overrides on top of the selected preset.
func WithCustomStyles(m theme.Map) Option {
	return func(s *settings) { s.customStyles = m }
}

// WithVerbosity sets the initial verbosity; values outside [0,3] are
// clamped.
func WithVerbosity(n int) Option {
	return func(s *settings) { s.verbosity = n }
}

// WithoutEmoji disables the glyph prefixes on message lines.
func WithoutEmoji() Option {
	return func(s *settings) { s.emoji = false }
}

// WithoutTimestamps drops the wall-clock prefix from event lines.
func WithoutTimestamps() Option {
	return func(s *settings) { s.timestamps = false }
}

// WithoutTracebacks limits PrintException to the error chain, without a
// stack trace.
func WithoutTracebacks() Option {
	return func(s *settings) { s.tracebacks = false }
}

// WithWriter directs output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(s *settings) { s.writer = w }
}

// WithRenderer injects a custom Renderer, replacing the default terminal
// renderer entirely.
func WithRenderer(r render.Renderer) Option {
	return func(s *settings) { s.renderer = r }
}

// WithInput injects the input source used by prompts.
func WithInput(in render.Input) Option {
	return func(s *settings) { s.input = in }
}

// WithClock overrides the clock used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// New constructs a Console. The theme name is validated before any state
// is created: an unknown name returns an UNKNOWN_THEME error and no
// Console.
func New(opts ...Option) (*Console, error) {
	s := settings{
		theme:      DefaultTheme,
		verbosity:  1,
		emoji:      true,
		timestamps: true,
		tracebacks: true,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	merged, err := theme.Resolve(s.theme, s.customStyles)
	if err != nil {
		return nil, err
	}

	renderer := s.renderer
	if renderer == nil {
		w := s.writer
		if w == nil {
			w = os.Stdout
		}
		// Terminal detection only means something on real files; any
		// other writer gets the plain renderer.
		if _, ok := w.(*os.File); ok {
			renderer = render.NewTerminal(w)
		} else {
			renderer = render.NewPlain(w)
		}
	}

	input := s.input
	if input == nil {
		input = render.NewTTYInput(os.Stdin, os.Stdout)
	}

	c := &Console{
		renderer:   renderer,
		input:      input,
		resolver:   style.NewResolver(merged),
		themeName:  strings.ToLower(s.theme),
		verbosity:  clampLevel(s.verbosity),
		emoji:      s.emoji,
		timestamps: s.timestamps,
		tracebacks: s.tracebacks,
		now:        s.now,
		log:        logging.GetLogger("console"),
	}

	c.log.Debug().
		Str("theme", c.themeName).
		Int("verbosity", int(c.verbosity)).
		Bool("emoji", c.emoji).
		Msg("Console created")

	return c, nil
}

// ---------- State transitions ----------

// SetTheme switches the active theme, optionally merging overrides. The
// switch is atomic: on an unknown name the error is returned and the
// previous theme stays active.
func (c *Console) SetTheme(name string, overrides theme.Map) error {
	merged, err := theme.Resolve(name, overrides)
	if err != nil {
		return err
	}
	c.themeName = strings.ToLower(name)
	c.resolver = style.NewResolver(merged)
	c.log.Debug().Str("theme", c.themeName).Msg("Theme changed")
	return nil
}

// SetVerbosity replaces the verbosity level, clamping into [0,3]. It
// never fails.
func (c *Console) SetVerbosity(n int) {
	c.verbosity = clampLevel(n)
}

// Theme returns the active theme name.
func (c *Console) Theme() string { return c.themeName }

// Verbosity returns the active verbosity level.
func (c *Console) Verbosity() int { return int(c.verbosity) }

func (c *Console) allowed(category Category, level EventLevel) bool {
	return allows(c.verbosity, category, level)
}

// ---------- Messages ----------

func (c *Console) message(role, glyph, msg string) {
	if !c.allowed(CategoryMessage, "") {
		return
	}
	spans := make([]style.Span, 0, 2)
	if c.emoji {
		spans = append(spans, style.Plain(glyph+" "))
	}
	spans = append(spans, c.resolver.Span(msg, role, ""))
	c.renderer.Line(spans...)
}

// Success prints a success message.
func (c *Console) Success(msg string) { c.message("success", "✅", msg) }

// Info prints an informational message.
func (c *Console) Info(msg string) { c.message("info", "ℹ️", msg) }

// Warning prints a warning message.
func (c *Console) Warning(msg string) { c.message("warning", "⚠️", msg) }

// Error prints an error message.
func (c *Console) Error(msg string) { c.message("error", "❌", msg) }

// Event prints a leveled, log-like line. Events are hidden below
// verbosity 2; DEBUG events additionally require verbosity 3. When
// timestamps are enabled the line reads
// "[2006-01-02 15:04:05] LEVEL   message".
func (c *Console) Event(msg string, level EventLevel) {
	lvl := EventLevel(strings.ToUpper(string(level)))
	if !c.allowed(CategoryEvent, lvl) {
		return
	}

	var prefix string
	if c.timestamps {
		prefix = fmt.Sprintf("[%s] %-7s ", c.now().Format(timestampLayout), string(lvl))
	} else {
		prefix = fmt.Sprintf("%-7s ", string(lvl))
	}

	c.renderer.Line(
		c.resolver.Span(prefix, "event."+string(lvl), ""),
		style.Plain(msg),
	)
}

// ---------- Structure ----------

// Header prints a labeled rule with blank lines around it. An optional
// style descriptor overrides the default header label style.
func (c *Console) Header(msg string, styleOverride ...string) {
	if !c.allowed(CategoryMessage, "") {
		return
	}
	labelStyle := "bold cyan"
	if len(styleOverride) > 0 && styleOverride[0] != "" {
		labelStyle = styleOverride[0]
	}
	c.renderer.Blank()
	c.renderer.Rule(style.Span{Text: msg, Style: labelStyle}, c.resolver.Resolve("rule", ""))
	c.renderer.Blank()
}

// RuleOptions tunes Rule's label and line styles.
type RuleOptions struct {
	LabelStyle string
	LineStyle  string
}

// Rule draws a horizontal rule, optionally labeled.
func (c *Console) Rule(label string, opts RuleOptions) {
	if !c.allowed(CategoryMessage, "") {
		return
	}
	labelStyle := opts.LabelStyle
	if labelStyle == "" {
		labelStyle = "#cccccc"
	}
	lineStyle := c.resolver.Resolve("rule", opts.LineStyle)
	c.renderer.Rule(style.Span{Text: label, Style: labelStyle}, lineStyle)
}

// Spacer adds vertical spacing. Size is a line count or one of the
// keywords "small"/"s" (1), "medium"/"m" (2), "large"/"l" (3); with no
// argument one line is added.
func (c *Console) Spacer(size ...interface{}) {
	if !c.allowed(CategoryMessage, "") {
		return
	}
	lines := 1
	if len(size) > 0 {
		switch v := size[0].(type) {
		case int:
			lines = v
		case string:
			switch v {
			case "small", "s":
				lines = 1
			case "medium", "m":
				lines = 2
			case "large", "l":
				lines = 3
			}
		}
	}
	for i := 0; i < lines; i++ {
		c.renderer.Blank()
	}
}

// PanelOptions tunes Panel rendering.
type PanelOptions struct {
	Title       string
	Style       string // interior content style
	BorderStyle string // overrides the theme's panel role
	Box         string // border shape name, default rounded
	Expand      bool
	Padding     int
}

// Panel draws message inside a framed box.
func (c *Console) Panel(message string, opts PanelOptions) {
	if !c.allowed(CategoryMessage, "") {
		return
	}
	c.renderer.Panel(render.PanelSpec{
		Content:      message,
		Title:        opts.Title,
		BorderStyle:  c.resolver.Resolve("panel", opts.BorderStyle),
		ContentStyle: opts.Style,
		Box:          style.ResolveBox(opts.Box),
		Expand:       opts.Expand,
		Padding:      opts.Padding,
	})
}

// Markdown renders a markdown block.
func (c *Console) Markdown(text string) error {
	if !c.allowed(CategoryMessage, "") {
		return nil
	}
	return c.renderer.Markdown(text)
}

// CodeOptions tunes Code rendering.
type CodeOptions struct {
	Title string
	Wrap  bool
}

// Code renders a syntax-highlighted code block framed with the theme's
// code.border style.
func (c *Console) Code(source, language string, opts CodeOptions) error {
	if !c.allowed(CategoryMessage, "") {
		return nil
	}
	return c.renderer.Code(render.CodeSpec{
		Source:      source,
		Language:    language,
		Title:       opts.Title,
		Wrap:        opts.Wrap,
		BorderStyle: c.resolver.Resolve("code.border", ""),
	})
}

// ---------- Data ----------

// TableOptions tunes Table rendering.
type TableOptions struct {
	Title       string
	HeaderStyle string
	Box         string
	Expand      bool
}

// Table renders rows under headers.
func (c *Console) Table(headers []string, rows [][]string, opts TableOptions) {
	if !c.allowed(CategoryMessage, "") {
		return
	}
	c.renderer.Table(render.TableSpec{
		Headers:     headers,
		Rows:        rows,
		Title:       opts.Title,
		HeaderStyle: c.resolver.Resolve("table.header", opts.HeaderStyle),
		Box:         style.ResolveBox(opts.Box),
		Expand:      opts.Expand,
	})
}

// JSON pretty-prints data as an indented, highlighted JSON document in a
// panel.
func (c *Console) JSON(data interface{}, title string) error {
	if !c.allowed(CategoryMessage, "") {
		return nil
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return c.renderer.JSON(encoded, title, c.resolver.Resolve("panel", ""))
}

// KeyValueOptions tunes KeyValue rendering.
type KeyValueOptions struct {
	// Secret masks the value. Keep is the number of leading characters
	// left visible: 0 means the default of 3, a negative value masks
	// the whole string.
	Secret bool
	Keep   int
	Mask   rune
}

// KeyValue prints a single "key: value" line, masking the value when
// requested.
func (c *Console) KeyValue(key string, value interface{}, opts KeyValueOptions) {
	if !c.allowed(CategoryMessage, "") {
		return
	}

	display := fmt.Sprint(value)
	if opts.Secret {
		keep := opts.Keep
		if keep == 0 {
			keep = redact.DefaultKeep
		}
		maskRune := opts.Mask
		if maskRune == 0 {
			maskRune = '*'
		}
		display = redact.Mask(value, keep, maskRune)
	}

	c.renderer.Line(
		c.resolver.Span(key, "key", ""),
		style.Plain(": "),
		c.resolver.Span(display, "value", ""),
	)
}

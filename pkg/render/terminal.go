package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/prettiprint/pkg/style"
)

// Terminal renders rich output to a writer. Each Terminal owns its own
// lipgloss renderer bound to that writer, so multiple instances with
// different profiles can coexist in one process.
type Terminal struct {
	w     io.Writer
	lip   *lipgloss.Renderer
	width int
}

// NewTerminal creates a renderer for w. Color support is detected from the
// writer: the NO_COLOR convention and non-terminal writers both downgrade
// to plain text.
func NewTerminal(w io.Writer) *Terminal {
	lr := lipgloss.NewRenderer(w)
	if termenv.EnvNoColor() {
		lr.SetColorProfile(termenv.Ascii)
	} else if f, ok := w.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			lr.SetColorProfile(termenv.Ascii)
		}
	}
	return &Terminal{w: w, lip: lr, width: 80}
}

// SetWidth updates the layout width used for rules, expanded panels and
// markdown wrapping.
func (t *Terminal) SetWidth(width int) {
	if width > 0 {
		t.width = width
	}
}

// Writer exposes the underlying writer (the live widgets attach to it).
func (t *Terminal) Writer() io.Writer { return t.w }

func (t *Terminal) styleFor(descriptor string) lipgloss.Style {
	return style.Compile(descriptor).Renderer(t.lip)
}

func (t *Terminal) colored() bool {
	return t.lip.ColorProfile() != termenv.Ascii
}

// Line writes one line composed of styled spans.
func (t *Terminal) Line(spans ...style.Span) {
	var b strings.Builder
	for _, span := range spans {
		if span.Style == "" {
			b.WriteString(span.Text)
			continue
		}
		b.WriteString(t.styleFor(span.Style).Render(span.Text))
	}
	fmt.Fprintln(t.w, b.String())
}

// Blank writes an empty line.
func (t *Terminal) Blank() {
	fmt.Fprintln(t.w)
}

// Rule draws a horizontal rule across the layout width. A non-empty label
// is centered within the line.
func (t *Terminal) Rule(label style.Span, lineStyle string) {
	ls := t.styleFor(lineStyle)
	if label.Text == "" {
		fmt.Fprintln(t.w, ls.Render(strings.Repeat("─", t.width)))
		return
	}

	text := " " + label.Text + " "
	fill := t.width - lipgloss.Width(text)
	if fill < 2 {
		fill = 2
	}
	left := fill / 2
	right := fill - left

	rendered := label.Text
	if label.Style != "" {
		rendered = t.styleFor(label.Style).Render(label.Text)
	}
	fmt.Fprintln(t.w, ls.Render(strings.Repeat("─", left))+" "+rendered+" "+ls.Render(strings.Repeat("─", right)))
}

// Panel draws content inside the requested box shape. The minimal family
// drops the side frame; the simple family degrades to head and foot rules.
func (t *Terminal) Panel(spec PanelSpec) {
	pad := spec.Padding
	if pad <= 0 {
		pad = 1
	}

	lines := strings.Split(strings.TrimRight(spec.Content, "\n"), "\n")
	inner := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > inner {
			inner = w
		}
	}
	if tw := lipgloss.Width(spec.Title) + 4; spec.Title != "" && tw > inner {
		inner = tw
	}
	if spec.Expand && t.width-2-2*pad > inner {
		inner = t.width - 2 - 2*pad
	}

	bs := t.styleFor(spec.BorderStyle)
	b := spec.Box.Border
	frame := inner + 2*pad

	body := func(prefix, suffix string) {
		for _, line := range lines {
			middle := strings.Repeat(" ", pad) + line + strings.Repeat(" ", inner-lipgloss.Width(line)+pad)
			if spec.ContentStyle != "" {
				middle = t.styleFor(spec.ContentStyle).Render(middle)
			}
			fmt.Fprintln(t.w, prefix+middle+suffix)
		}
	}

	switch spec.Box.Frame {
	case style.FrameFull:
		top := b.TopLeft + b.Top
		if spec.Title != "" {
			label := " " + spec.Title + " "
			top += label + strings.Repeat(b.Top, maxInt(0, frame-1-lipgloss.Width(label)))
		} else {
			top += strings.Repeat(b.Top, frame-1)
		}
		top += b.TopRight
		fmt.Fprintln(t.w, bs.Render(top))
		body(bs.Render(b.Left), bs.Render(b.Right))
		fmt.Fprintln(t.w, bs.Render(b.BottomLeft+strings.Repeat(b.Bottom, frame)+b.BottomRight))

	case style.FrameRules:
		if spec.Title != "" {
			fmt.Fprintln(t.w, strings.Repeat(" ", pad)+bs.Render(spec.Title))
		}
		fmt.Fprintln(t.w, bs.Render(strings.Repeat(b.Top, frame+2)))
		body("", "")
		fmt.Fprintln(t.w, bs.Render(strings.Repeat(b.Bottom, frame+2)))

	default: // FrameColumns
		if spec.Title != "" {
			fmt.Fprintln(t.w, strings.Repeat(" ", pad)+bs.Render(spec.Title))
		}
		body("", "")
	}
}

// Table draws a column-aligned table with the given box shape.
func (t *Terminal) Table(spec TableSpec) {
	cols := len(spec.Headers)
	if cols == 0 {
		return
	}

	widths := make([]int, cols)
	for i, h := range spec.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range spec.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	hs := t.styleFor(spec.HeaderStyle)
	b := spec.Box.Border

	pad := func(s string, w int) string {
		return s + strings.Repeat(" ", maxInt(0, w-lipgloss.Width(s)))
	}

	cells := func(row []string, styled bool) []string {
		out := make([]string, cols)
		for i := 0; i < cols; i++ {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if styled {
				out[i] = hs.Render(pad(cell, widths[i]))
			} else {
				out[i] = pad(cell, widths[i])
			}
		}
		return out
	}

	hline := func(left, junction, right string) string {
		segs := make([]string, cols)
		for i, w := range widths {
			segs[i] = strings.Repeat(b.Top, w+2)
		}
		return left + strings.Join(segs, junction) + right
	}

	totalWidth := cols*3 + 1
	for _, w := range widths {
		totalWidth += w
	}

	if spec.Title != "" {
		label := spec.Title
		if fill := totalWidth - lipgloss.Width(label); fill > 0 {
			label = strings.Repeat(" ", fill/2) + label
		}
		fmt.Fprintln(t.w, label)
	}

	switch spec.Box.Frame {
	case style.FrameFull:
		fmt.Fprintln(t.w, hline(b.TopLeft, b.MiddleTop, b.TopRight))
		fmt.Fprintln(t.w, b.Left+" "+strings.Join(cells(spec.Headers, true), " "+b.Left+" ")+" "+b.Right)
		fmt.Fprintln(t.w, hline(b.MiddleLeft, b.Middle, b.MiddleRight))
		for _, row := range spec.Rows {
			fmt.Fprintln(t.w, b.Left+" "+strings.Join(cells(row, false), " "+b.Left+" ")+" "+b.Right)
		}
		fmt.Fprintln(t.w, hline(b.BottomLeft, b.MiddleBottom, b.BottomRight))

	case style.FrameColumns:
		fmt.Fprintln(t.w, " "+strings.Join(cells(spec.Headers, true), " "+b.Left+" "))
		fmt.Fprintln(t.w, hline(b.Top, b.Middle, b.Top))
		for _, row := range spec.Rows {
			fmt.Fprintln(t.w, " "+strings.Join(cells(row, false), " "+b.Left+" "))
		}

	default: // FrameRules
		fmt.Fprintln(t.w, " "+strings.Join(cells(spec.Headers, true), "  "))
		fmt.Fprintln(t.w, strings.Repeat(b.Top, totalWidth))
		for _, row := range spec.Rows {
			fmt.Fprintln(t.w, " "+strings.Join(cells(row, false), "  "))
		}
	}
}

// Dictionary renders right-justified keys against values, framed like a
// panel.
func (t *Terminal) Dictionary(spec DictSpec) {
	keyWidth := 0
	for _, item := range spec.Items {
		if w := lipgloss.Width(item[0]); w > keyWidth {
			keyWidth = w
		}
	}

	ks := t.styleFor(spec.KeyStyle)
	vs := t.styleFor(spec.ValueStyle)

	lines := make([]string, len(spec.Items))
	for i, item := range spec.Items {
		padding := strings.Repeat(" ", keyWidth-lipgloss.Width(item[0]))
		lines[i] = padding + ks.Render(item[0]) + "  " + vs.Render(item[1])
	}

	t.Panel(PanelSpec{
		Content:     strings.Join(lines, "\n"),
		Title:       spec.Title,
		BorderStyle: spec.BorderStyle,
		Box:         spec.Box,
		Expand:      spec.Expand,
	})
}

// Tree renders a hierarchy with box-drawing guides.
func (t *Terminal) Tree(root *TreeNode) {
	if root == nil {
		return
	}
	t.Line(style.Span{Text: root.Label, Style: root.Style})
	t.treeChildren(root.Children, "")
}

func (t *Terminal) treeChildren(children []*TreeNode, prefix string) {
	for i, child := range children {
		guide, next := "├── ", "│   "
		if i == len(children)-1 {
			guide, next = "└── ", "    "
		}
		t.Line(style.Plain(prefix+guide), style.Span{Text: child.Label, Style: child.Style})
		t.treeChildren(child.Children, prefix+next)
	}
}

// Markdown renders markdown through glamour with automatic light/dark
// style selection.
func (t *Terminal) Markdown(text string) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(t.width)}
	if t.colored() {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}
	out, err := tr.Render(text)
	if err != nil {
		return err
	}
	fmt.Fprint(t.w, out)
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/arthur-debert/prettiprint/pkg/style"
)

const highlightStyle = "monokai"

// highlight runs source through chroma for the given language. When the
// renderer has no color support the noop formatter keeps the text plain.
func (t *Terminal) highlight(source, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatterName := "terminal256"
	if !t.colored() {
		formatterName = "noop"
	}
	formatter := formatters.Get(formatterName)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	chromaStyle := chromastyles.Get(highlightStyle)
	if chromaStyle == nil {
		chromaStyle = chromastyles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, chromaStyle, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Code renders a syntax-highlighted, line-numbered block framed by the
// code border style.
func (t *Terminal) Code(spec CodeSpec) error {
	source := strings.TrimRight(spec.Source, "\n")
	if avail := t.width - 10; spec.Wrap && avail > 0 {
		// Wrap the plain source before highlighting so ANSI sequences
		// are never split.
		source = hardWrap(source, avail)
	}

	highlighted, err := t.highlight(source, spec.Language)
	if err != nil {
		return err
	}

	gutter := t.styleFor("dim")
	lines := strings.Split(strings.TrimRight(highlighted, "\n"), "\n")

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(gutter.Render(fmt.Sprintf("%4d │ ", i+1)))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	t.Panel(PanelSpec{
		Content:     b.String(),
		Title:       spec.Title,
		BorderStyle: spec.BorderStyle,
		Box:         style.ResolveBox("rounded"),
		Padding:     1,
	})
	return nil
}

// hardWrap breaks lines longer than width at rune boundaries.
func hardWrap(s string, width int) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		runes := []rune(line)
		for len(runes) > width {
			out = append(out, string(runes[:width]))
			runes = runes[width:]
		}
		out = append(out, string(runes))
	}
	return strings.Join(out, "\n")
}

// JSON renders pre-marshaled JSON, syntax highlighted, inside a panel.
func (t *Terminal) JSON(data []byte, title, borderStyle string) error {
	highlighted, err := t.highlight(string(data), "json")
	if err != nil {
		return err
	}
	t.Panel(PanelSpec{
		Content:     highlighted,
		Title:       title,
		BorderStyle: borderStyle,
		Box:         style.ResolveBox("rounded"),
		Padding:     1,
	})
	return nil
}

package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/prettiprint/pkg/render"
	"github.com/arthur-debert/prettiprint/pkg/style"
)

// newPlainTerminal returns a Terminal that is guaranteed to emit no ANSI
// sequences, so tests can assert on exact text.
func newPlainTerminal(t *testing.T) (*render.Terminal, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	return render.NewTerminal(&buf), &buf
}

func TestLine(t *testing.T) {
	term, buf := newPlainTerminal(t)

	term.Line(style.Plain("plain "), style.Span{Text: "styled", Style: "bold green"})
	assert.Equal(t, "plain styled\n", buf.String())
}

func TestBlank(t *testing.T) {
	term, buf := newPlainTerminal(t)
	term.Blank()
	assert.Equal(t, "\n", buf.String())
}

func TestRule(t *testing.T) {
	term, buf := newPlainTerminal(t)
	term.SetWidth(20)

	term.Rule(style.Plain(""), "dim")
	assert.Equal(t, strings.Repeat("─", 20)+"\n", buf.String())

	buf.Reset()
	term.Rule(style.Span{Text: "Hi", Style: "bold"}, "dim")
	line := strings.TrimRight(buf.String(), "\n")
	assert.Contains(t, line, " Hi ")
	assert.Equal(t, 20, len([]rune(line)))
}

func TestPanelRounded(t *testing.T) {
	term, buf := newPlainTerminal(t)

	term.Panel(render.PanelSpec{
		Content: "hi",
		Box:     style.ResolveBox("rounded"),
	})

	want := "╭────╮\n│ hi │\n╰────╯\n"
	assert.Equal(t, want, buf.String())
}

func TestPanelTitleAndMultiline(t *testing.T) {
	term, buf := newPlainTerminal(t)

	term.Panel(render.PanelSpec{
		Content: "first\nsecond line",
		Title:   "Info",
		Box:     style.ResolveBox("double"),
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], " Info ")
	assert.True(t, strings.HasPrefix(lines[0], "╔"))
	assert.Equal(t, "║ first       ║", lines[1])
	assert.Equal(t, "║ second line ║", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "╚"))

	// All lines are equally wide.
	for _, line := range lines {
		assert.Equal(t, len([]rune(lines[1])), len([]rune(line)))
	}
}

func TestPanelFrameVariants(t *testing.T) {
	term, buf := newPlainTerminal(t)

	term.Panel(render.PanelSpec{Content: "x", Box: style.ResolveBox("simple")})
	assert.NotContains(t, buf.String(), "│", "simple frames draw no verticals")
	assert.Contains(t, buf.String(), "─")

	buf.Reset()
	term.Panel(render.PanelSpec{Content: "x", Box: style.ResolveBox("minimal")})
	assert.NotContains(t, buf.String(), "─", "minimal frames draw no rules")
}

func TestTable(t *testing.T) {
	term, buf := newPlainTerminal(t)

	term.Table(render.TableSpec{
		Headers: []string{"Name", "Qty"},
		Rows:    [][]string{{"apples", "3"}, {"pears", "12"}},
		Box:     style.ResolveBox("rounded"),
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "╭────────┬─────╮", lines[0])
	assert.Equal(t, "│ Name   │ Qty │", lines[1])
	assert.Equal(t, "├────────┼─────┤", lines[2])
	assert.Equal(t, "│ apples │ 3   │", lines[3])
	assert.Equal(t, "│ pears  │ 12  │", lines[4])
	assert.Equal(t, "╰────────┴─────╯", lines[5])
}

func TestTableTitle(t *testing.T) {
	term, buf := newPlainTerminal(t)

	term.Table(render.TableSpec{
		Headers: []string{"K"},
		Rows:    [][]string{{"v"}},
		Title:   "Stock",
		Box:     style.ResolveBox("square"),
	})

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, lines[0], "Stock")
}

func TestTree(t *testing.T) {
	term, buf := newPlainTerminal(t)

	root := &render.TreeNode{Label: "root"}
	a := root.Add("a", "")
	a.Add("c", "")
	root.Add("b", "")

	term.Tree(root)

	want := strings.Join([]string{
		"root",
		"├── a",
		"│   └── c",
		"└── b",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestCode(t *testing.T) {
	term, buf := newPlainTerminal(t)

	err := term.Code(render.CodeSpec{
		Source:   "x := 1\ny := 2",
		Language: "go",
		Title:    "snippet",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1 │ x := 1")
	assert.Contains(t, out, "2 │ y := 2")
	assert.Contains(t, out, " snippet ")
	assert.Contains(t, out, "╭")
}

func TestJSON(t *testing.T) {
	term, buf := newPlainTerminal(t)

	err := term.JSON([]byte(`{"name": "ada"}`), "Payload", "cyan")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"name"`)
	assert.Contains(t, out, " Payload ")
}

func TestMarkdown(t *testing.T) {
	term, buf := newPlainTerminal(t)

	err := term.Markdown("# Title\n\nsome *body* text")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Title")
	assert.Contains(t, buf.String(), "body")
}

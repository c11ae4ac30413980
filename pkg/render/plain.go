package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/prettiprint/pkg/style"
)

// Plain renders the same structures as Terminal without any styling or
// live widgets. It suits piped output and log capture, and keeps the
// facade fully usable when no terminal is present.
type Plain struct {
	w io.Writer
}

// NewPlain creates a plain-text renderer for w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Line(spans ...style.Span) {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	fmt.Fprintln(p.w, b.String())
}

func (p *Plain) Blank() {
	fmt.Fprintln(p.w)
}

func (p *Plain) Rule(label style.Span, _ string) {
	if label.Text == "" {
		fmt.Fprintln(p.w, strings.Repeat("-", 80))
		return
	}
	fmt.Fprintf(p.w, "--- %s ---\n", label.Text)
}

func (p *Plain) Panel(spec PanelSpec) {
	if spec.Title != "" {
		fmt.Fprintf(p.w, "[%s]\n", spec.Title)
	}
	for _, line := range strings.Split(strings.TrimRight(spec.Content, "\n"), "\n") {
		fmt.Fprintf(p.w, "  %s\n", line)
	}
}

func (p *Plain) Table(spec TableSpec) {
	if spec.Title != "" {
		fmt.Fprintln(p.w, spec.Title)
	}
	fmt.Fprintln(p.w, strings.Join(spec.Headers, "\t"))
	for _, row := range spec.Rows {
		fmt.Fprintln(p.w, strings.Join(row, "\t"))
	}
}

func (p *Plain) Dictionary(spec DictSpec) {
	if spec.Title != "" {
		fmt.Fprintf(p.w, "[%s]\n", spec.Title)
	}
	for _, item := range spec.Items {
		fmt.Fprintf(p.w, "  %s: %s\n", item[0], item[1])
	}
}

func (p *Plain) Tree(root *TreeNode) {
	if root == nil {
		return
	}
	p.treeNode(root, 0)
}

func (p *Plain) treeNode(n *TreeNode, depth int) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), n.Label)
	for _, child := range n.Children {
		p.treeNode(child, depth+1)
	}
}

func (p *Plain) Markdown(text string) error {
	fmt.Fprintln(p.w, text)
	return nil
}

func (p *Plain) Code(spec CodeSpec) error {
	lines := strings.Split(strings.TrimRight(spec.Source, "\n"), "\n")
	if spec.Title != "" {
		fmt.Fprintf(p.w, "[%s]\n", spec.Title)
	}
	for i, line := range lines {
		fmt.Fprintf(p.w, "%4d | %s\n", i+1, line)
	}
	return nil
}

func (p *Plain) JSON(data []byte, title, _ string) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	if title != "" {
		fmt.Fprintf(p.w, "[%s]\n", title)
	}
	fmt.Fprintln(p.w, buf.String())
	return nil
}

type plainStatus struct {
	w io.Writer
}

func (s plainStatus) UpdateText(text string) { fmt.Fprintln(s.w, text) }
func (s plainStatus) Succeed(text string)    { fmt.Fprintln(s.w, "OK "+text) }
func (s plainStatus) Fail(text string)       { fmt.Fprintln(s.w, "FAIL "+text) }
func (s plainStatus) Stop()                  {}

func (p *Plain) Status(text, _ string) StatusHandle {
	fmt.Fprintln(p.w, text+"...")
	return plainStatus{w: p.w}
}

type plainProgress struct {
	w io.Writer
}

func (g plainProgress) AddBar(title string, total int) ProgressBar {
	fmt.Fprintf(g.w, "%s (0/%d)\n", title, total)
	return &countingBar{total: total}
}

func (g plainProgress) Stop() {}

func (p *Plain) Progress() ProgressGroup {
	return plainProgress{w: p.w}
}

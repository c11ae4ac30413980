package console_test

import (
	"errors"
	"strings"

	"github.com/arthur-debert/prettiprint/pkg/render"
	"github.com/arthur-debert/prettiprint/pkg/style"
)

// fakeRenderer records every call so tests can assert both suppression
// (no calls at all) and the styles the facade resolved.
type fakeRenderer struct {
	calls    []string
	lines    [][]style.Span
	panels   []render.PanelSpec
	tables   []render.TableSpec
	dicts    []render.DictSpec
	trees    []*render.TreeNode
	codes    []render.CodeSpec
	jsons    [][]byte
	markdown []string
	statuses []*fakeStatus
	groups   []*fakeProgressGroup
}

func (f *fakeRenderer) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeRenderer) Line(spans ...style.Span) {
	f.record("Line")
	f.lines = append(f.lines, spans)
}

func (f *fakeRenderer) Blank() { f.record("Blank") }

func (f *fakeRenderer) Rule(label style.Span, lineStyle string) {
	f.record("Rule")
	f.lines = append(f.lines, []style.Span{label, {Text: "", Style: lineStyle}})
}

func (f *fakeRenderer) Panel(spec render.PanelSpec) {
	f.record("Panel")
	f.panels = append(f.panels, spec)
}

func (f *fakeRenderer) Table(spec render.TableSpec) {
	f.record("Table")
	f.tables = append(f.tables, spec)
}

func (f *fakeRenderer) Dictionary(spec render.DictSpec) {
	f.record("Dictionary")
	f.dicts = append(f.dicts, spec)
}

func (f *fakeRenderer) Tree(root *render.TreeNode) {
	f.record("Tree")
	f.trees = append(f.trees, root)
}

func (f *fakeRenderer) Markdown(text string) error {
	f.record("Markdown")
	f.markdown = append(f.markdown, text)
	return nil
}

func (f *fakeRenderer) Code(spec render.CodeSpec) error {
	f.record("Code")
	f.codes = append(f.codes, spec)
	return nil
}

func (f *fakeRenderer) JSON(data []byte, title, borderStyle string) error {
	f.record("JSON")
	f.jsons = append(f.jsons, data)
	return nil
}

func (f *fakeRenderer) Status(text, styleDescriptor string) render.StatusHandle {
	f.record("Status")
	s := &fakeStatus{text: text}
	f.statuses = append(f.statuses, s)
	return s
}

func (f *fakeRenderer) Progress() render.ProgressGroup {
	f.record("Progress")
	g := &fakeProgressGroup{}
	f.groups = append(f.groups, g)
	return g
}

// lineText flattens the spans of the i-th recorded line.
func (f *fakeRenderer) lineText(i int) string {
	var b strings.Builder
	for _, span := range f.lines[i] {
		b.WriteString(span.Text)
	}
	return b.String()
}

type fakeStatus struct {
	text    string
	stopped int
	outcome string
}

func (s *fakeStatus) UpdateText(text string) { s.text = text }
func (s *fakeStatus) Succeed(text string)    { s.outcome = "succeed"; s.stopped++ }
func (s *fakeStatus) Fail(text string)       { s.outcome = "fail"; s.stopped++ }
func (s *fakeStatus) Stop()                  { s.stopped++ }

type fakeProgressGroup struct {
	bars    []*fakeBar
	stopped bool
}

func (g *fakeProgressGroup) AddBar(title string, total int) render.ProgressBar {
	bar := &fakeBar{title: title, total: total}
	g.bars = append(g.bars, bar)
	return bar
}

func (g *fakeProgressGroup) Stop() { g.stopped = true }

type fakeBar struct {
	title   string
	current int
	total   int
}

func (b *fakeBar) Add(n int)    { b.current += n }
func (b *fakeBar) Current() int { return b.current }
func (b *fakeBar) Total() int   { return b.total }

// scriptedInput feeds canned answers to prompts.
type scriptedInput struct {
	answers []string
	prompts []string
	secrets int
}

func (s *scriptedInput) next() (string, error) {
	if len(s.answers) == 0 {
		return "", errors.New("no scripted answer left")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedInput) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.next()
}

func (s *scriptedInput) ReadSecret(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	s.secrets++
	return s.next()
}

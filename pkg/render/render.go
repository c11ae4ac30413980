// Package render implements the terminal drawing layer consumed by the
// console facade. The facade decides what to show and with which resolved
// styles; this package owns text composition, box drawing, column layout
// and color application.
//
// Renderers receive structured data: styled spans, panel/table/tree specs
// with style descriptors already resolved against the active theme. No
// markup strings cross this boundary.
package render

import "github.com/arthur-debert/prettiprint/pkg/style"

// PanelSpec describes a framed block of content.
type PanelSpec struct {
	Content      string
	Title        string
	BorderStyle  string // style descriptor for border and title
	ContentStyle string // optional interior style descriptor
	Box          style.Box
	Expand       bool
	Padding      int // horizontal padding inside the frame
}

// TableSpec describes a column-aligned table.
type TableSpec struct {
	Headers     []string
	Rows        [][]string
	Title       string
	HeaderStyle string
	Box         style.Box
	Expand      bool
}

// TreeNode is one node of a hierarchical structure. Style is a descriptor
// applied to the label.
type TreeNode struct {
	Label    string
	Style    string
	Children []*TreeNode
}

// Add appends a child node and returns it, for fluent tree building.
func (n *TreeNode) Add(label, styleDescriptor string) *TreeNode {
	child := &TreeNode{Label: label, Style: styleDescriptor}
	n.Children = append(n.Children, child)
	return child
}

// DictSpec describes a key→value listing framed like a panel.
type DictSpec struct {
	Items       [][2]string // key, value pairs in display order
	Title       string
	KeyStyle    string
	ValueStyle  string
	BorderStyle string
	Box         style.Box
	Expand      bool
}

// CodeSpec describes a syntax-highlighted code block.
type CodeSpec struct {
	Source      string
	Language    string
	Title       string
	Wrap        bool
	BorderStyle string
}

// StatusHandle controls a live spinner. Implementations must restore the
// terminal to its normal state on Stop, Succeed and Fail alike.
type StatusHandle interface {
	UpdateText(text string)
	Succeed(text string)
	Fail(text string)
	Stop()
}

// ProgressBar is one task inside a progress group.
type ProgressBar interface {
	Add(n int)
	Current() int
	Total() int
}

// ProgressGroup is a set of live progress bars sharing one screen region.
type ProgressGroup interface {
	AddBar(title string, total int) ProgressBar
	Stop()
}

// Renderer is the drawing capability the console facade delegates to.
type Renderer interface {
	// Line writes one line composed of styled spans.
	Line(spans ...style.Span)
	// Blank writes an empty line.
	Blank()
	// Rule draws a horizontal rule, optionally labeled.
	Rule(label style.Span, lineStyle string)
	Panel(spec PanelSpec)
	Table(spec TableSpec)
	Dictionary(spec DictSpec)
	Tree(root *TreeNode)
	Markdown(text string) error
	Code(spec CodeSpec) error
	JSON(data []byte, title, borderStyle string) error
	Status(text, styleDescriptor string) StatusHandle
	Progress() ProgressGroup
}

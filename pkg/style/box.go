package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame describes how much of a box shape is actually drawn.
type Frame int

const (
	// FrameFull draws the complete outer border.
	FrameFull Frame = iota
	// FrameColumns keeps column separators but no outer frame.
	FrameColumns
	// FrameRules draws horizontal rules only (header separator).
	FrameRules
)

// Box is a border shape for panels and tables.
type Box struct {
	Name   string
	Border lipgloss.Border
	Frame  Frame
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
	MiddleLeft: "+", MiddleRight: "+", Middle: "+", MiddleTop: "+", MiddleBottom: "+",
}

var boxes = map[string]Box{
	"ROUNDED":        {Name: "rounded", Border: lipgloss.RoundedBorder(), Frame: FrameFull},
	"SQUARE":         {Name: "square", Border: lipgloss.NormalBorder(), Frame: FrameFull},
	"HEAVY":          {Name: "heavy", Border: lipgloss.ThickBorder(), Frame: FrameFull},
	"DOUBLE":         {Name: "double", Border: lipgloss.DoubleBorder(), Frame: FrameFull},
	"ASCII":          {Name: "ascii", Border: asciiBorder, Frame: FrameFull},
	"MINIMAL":        {Name: "minimal", Border: lipgloss.NormalBorder(), Frame: FrameColumns},
	"MINIMAL_HEAVY":  {Name: "minimal_heavy", Border: lipgloss.ThickBorder(), Frame: FrameColumns},
	"MINIMAL_DOUBLE": {Name: "minimal_double", Border: lipgloss.DoubleBorder(), Frame: FrameColumns},
	"SIMPLE":         {Name: "simple", Border: lipgloss.NormalBorder(), Frame: FrameRules},
	"SIMPLE_HEAVY":   {Name: "simple_heavy", Border: lipgloss.ThickBorder(), Frame: FrameRules},
	"SIMPLE_HEAD":    {Name: "simple_head", Border: lipgloss.NormalBorder(), Frame: FrameRules},
}

// synonyms for the common shapes.
var boxSynonyms = map[string]string{
	"ROUND": "ROUNDED",
	"THICK": "HEAVY",
}

// ResolveBox maps a shape name to a Box. The lookup is case-insensitive
// and normalizes hyphens and spaces to underscores; a trailing "box" word
// is ignored so "Double-Box" means double. Empty or unrecognized names
// resolve to rounded: a typo in a cosmetic parameter must never crash
// output.
func ResolveBox(name string) Box {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	key = strings.TrimSuffix(key, "_BOX")

	if canonical, ok := boxSynonyms[key]; ok {
		key = canonical
	}
	if box, ok := boxes[key]; ok {
		return box
	}
	return boxes["ROUNDED"]
}

package render

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/prettiprint/pkg/style"
)

// ptermStyle maps a descriptor onto a pterm style for the live widgets.
// The widgets only support the ANSI-16 palette, so hex colors degrade to
// the default color; attributes map directly.
func ptermStyle(descriptor string) *pterm.Style {
	var opts []pterm.Color
	for _, word := range strings.Fields(descriptor) {
		switch strings.ToLower(word) {
		case "bold":
			opts = append(opts, pterm.Bold)
		case "italic":
			opts = append(opts, pterm.Italic)
		case "underline":
			opts = append(opts, pterm.Underscore)
		case "black":
			opts = append(opts, pterm.FgBlack)
		case "red":
			opts = append(opts, pterm.FgRed)
		case "green":
			opts = append(opts, pterm.FgGreen)
		case "yellow":
			opts = append(opts, pterm.FgYellow)
		case "blue":
			opts = append(opts, pterm.FgBlue)
		case "magenta", "purple":
			opts = append(opts, pterm.FgMagenta)
		case "cyan":
			opts = append(opts, pterm.FgCyan)
		case "white":
			opts = append(opts, pterm.FgWhite)
		case "gray", "grey", "dim":
			opts = append(opts, pterm.FgGray)
		}
	}
	if len(opts) == 0 {
		return nil
	}
	return pterm.NewStyle(opts...)
}

type spinnerHandle struct {
	sp *pterm.SpinnerPrinter
}

func (h *spinnerHandle) UpdateText(text string) { h.sp.UpdateText(text) }
func (h *spinnerHandle) Succeed(text string)    { h.sp.Success(text) }
func (h *spinnerHandle) Fail(text string)       { h.sp.Fail(text) }
func (h *spinnerHandle) Stop()                  { _ = h.sp.Stop() }

// Status starts a spinner bound to the renderer's writer. The returned
// handle always restores the terminal when stopped.
func (t *Terminal) Status(text, styleDescriptor string) StatusHandle {
	printer := pterm.DefaultSpinner.WithWriter(t.w)
	if st := ptermStyle(styleDescriptor); st != nil {
		printer = printer.WithStyle(st)
	}
	sp, err := printer.Start(text)
	if err != nil {
		// The spinner could not take over the terminal; fall back to a
		// plain line so the caller's scope still has something to show.
		t.Line(style.Span{Text: text, Style: styleDescriptor})
		return noopStatus{}
	}
	return &spinnerHandle{sp: sp}
}

type noopStatus struct{}

func (noopStatus) UpdateText(string) {}
func (noopStatus) Succeed(string)    {}
func (noopStatus) Fail(string)       {}
func (noopStatus) Stop()             {}

type progressGroup struct {
	multi *pterm.MultiPrinter
}

type progressBar struct {
	pb *pterm.ProgressbarPrinter
}

func (b *progressBar) Add(n int) {
	if n > 0 {
		b.pb.Add(n)
	}
}

func (b *progressBar) Current() int { return b.pb.Current }
func (b *progressBar) Total() int   { return b.pb.Total }

func (g *progressGroup) AddBar(title string, total int) ProgressBar {
	pb, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithWriter(g.multi.NewWriter()).
		Start(title)
	if err != nil {
		return &countingBar{total: total}
	}
	return &progressBar{pb: pb}
}

func (g *progressGroup) Stop() {
	_, _ = g.multi.Stop()
}

// countingBar tracks progress without drawing when the live bar could not
// start.
type countingBar struct {
	current int
	total   int
}

func (b *countingBar) Add(n int) {
	if n > 0 {
		b.current += n
	}
}

func (b *countingBar) Current() int { return b.current }
func (b *countingBar) Total() int   { return b.total }

// Progress starts a live multi-bar region on the renderer's writer.
func (t *Terminal) Progress() ProgressGroup {
	multi := pterm.DefaultMultiPrinter.WithWriter(t.w)
	_, _ = multi.Start()
	return &progressGroup{multi: multi}
}

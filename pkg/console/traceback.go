package console

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/arthur-debert/prettiprint/pkg/style"
)

// PrintException renders err with its full cause chain and, unless
// tracebacks were disabled at construction, the current stack. Like
// prompts it is not verbosity-gated: an error being reported should not
// vanish because the output dial is low.
func (c *Console) PrintException(err error) {
	if err == nil {
		return
	}

	c.renderer.Line(c.resolver.Span(err.Error(), "error", ""))
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		c.renderer.Line(
			style.Plain("  caused by: "),
			style.Span{Text: cause.Error(), Style: "dim"},
		)
	}

	if !c.tracebacks {
		return
	}
	for _, line := range stackLines() {
		c.renderer.Line(style.Span{Text: line, Style: "dim"})
	}
}

// stackLines formats the callers of PrintException, skipping the runtime
// and this package's own frames.
func stackLines() []string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var lines []string
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			lines = append(lines, fmt.Sprintf("  at %s (%s:%d)", frame.Function, trimPath(frame.File), frame.Line))
		}
		if !more {
			break
		}
	}
	return lines
}

func trimPath(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

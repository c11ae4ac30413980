package console

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/arthur-debert/prettiprint/pkg/logging"
	"github.com/arthur-debert/prettiprint/pkg/render"
)

// StatusScope is a live spinner whose lifetime spans multiple calls. The
// terminal is restored to its normal state on every exit path; Stop is
// idempotent and safe to defer.
type StatusScope struct {
	handle render.StatusHandle
	active bool
}

// Update changes the spinner text.
func (s *StatusScope) Update(text string) {
	if s.active {
		s.handle.UpdateText(text)
	}
}

// Succeed ends the scope with a success line.
func (s *StatusScope) Succeed(text string) {
	if s.active {
		s.handle.Succeed(text)
		s.active = false
	}
}

// Fail ends the scope with a failure line.
func (s *StatusScope) Fail(text string) {
	if s.active {
		s.handle.Fail(text)
		s.active = false
	}
}

// Stop ends the scope without a closing line.
func (s *StatusScope) Stop() {
	if s.active {
		s.handle.Stop()
		s.active = false
	}
}

// Status starts a scoped spinner. At verbosity 0 the returned scope is
// inert and nothing is drawn.
func (c *Console) Status(text string) *StatusScope {
	if !c.allowed(CategoryMessage, "") {
		return &StatusScope{}
	}
	handle := c.renderer.Status(text, c.resolver.Resolve("accent", ""))
	return &StatusScope{handle: handle, active: true}
}

// WithStatus runs fn under a spinner, guaranteeing the terminal is
// restored even when fn panics.
func (c *Console) WithStatus(text string, fn func() error) error {
	defer logging.LogDuration(time.Now(), text)
	scope := c.Status(text)
	defer scope.Stop()
	return fn()
}

// Tracker drives a set of named progress tasks. Updates are caller-driven
// and monotonic-non-decreasing unless a task is explicitly reset.
type Tracker struct {
	group render.ProgressGroup
	tasks map[string]*task
}

type task struct {
	bar     render.ProgressBar
	current int
	total   int
	title   string
}

// humanizeThreshold is the task size above which totals are shown with
// comma grouping.
const humanizeThreshold = 10000

// Progress starts a multi-task progress tracker. At verbosity 0 the
// tracker is inert.
func (c *Console) Progress() *Tracker {
	if !c.allowed(CategoryMessage, "") {
		return &Tracker{tasks: make(map[string]*task)}
	}
	return &Tracker{
		group: c.renderer.Progress(),
		tasks: make(map[string]*task),
	}
}

// AddTask registers a named task with the given total. Adding a name that
// already exists replaces the old task.
func (t *Tracker) AddTask(name string, total int) {
	if total < 0 {
		total = 0
	}
	title := name
	if total >= humanizeThreshold {
		title = fmt.Sprintf("%s (%s items)", name, humanize.Comma(int64(total)))
	}

	tk := &task{total: total, title: title}
	if t.group != nil {
		tk.bar = t.group.AddBar(title, total)
	}
	t.tasks[name] = tk
}

// Advance moves a task forward by n. Negative or zero amounts are
// ignored; progress past the total is clamped.
func (t *Tracker) Advance(name string, n int) {
	tk, ok := t.tasks[name]
	if !ok || n <= 0 {
		return
	}
	if tk.current+n > tk.total {
		n = tk.total - tk.current
	}
	if n <= 0 {
		return
	}
	tk.current += n
	if tk.bar != nil {
		tk.bar.Add(n)
	}
}

// Reset returns a task's counter to zero. The visual bar starts over on a
// fresh line; the old one is left completed-as-was.
func (t *Tracker) Reset(name string) {
	tk, ok := t.tasks[name]
	if !ok {
		return
	}
	tk.current = 0
	if t.group != nil {
		tk.bar = t.group.AddBar(tk.title, tk.total)
	}
}

// Current reports a task's progress counter.
func (t *Tracker) Current(name string) int {
	if tk, ok := t.tasks[name]; ok {
		return tk.current
	}
	return 0
}

// Total reports a task's total.
func (t *Tracker) Total(name string) int {
	if tk, ok := t.tasks[name]; ok {
		return tk.total
	}
	return 0
}

// Done reports whether every task has reached its total.
func (t *Tracker) Done() bool {
	for _, tk := range t.tasks {
		if tk.current < tk.total {
			return false
		}
	}
	return true
}

// Stop tears down the live progress region.
func (t *Tracker) Stop() {
	if t.group != nil {
		t.group.Stop()
	}
}

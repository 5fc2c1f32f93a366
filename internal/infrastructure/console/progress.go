package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
)

// barReporter renders a progress bar incrementally on a single line.
// The tagger drives it synchronously, so no program loop is needed; the bar
// is re-rendered in place on every update.
type barReporter struct {
	out io.Writer
	bar progress.Model
}

// StartProgress opens a progress bar display for total items
func (p *TerminalPrompter) StartProgress(title string, total int) ProgressReporter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	fmt.Fprintln(p.out, titleStyle.Render(title))
	return &barReporter{out: p.out, bar: bar}
}

// Update redraws the bar for item current of total
func (r *barReporter) Update(current, total int) {
	if total <= 0 {
		return
	}
	percent := float64(current) / float64(total)
	fmt.Fprintf(r.out, "\r%s %d/%d", r.bar.ViewAs(percent), current, total)
}

// Done finishes the bar line
func (r *barReporter) Done() {
	fmt.Fprint(r.out, "\n")
}

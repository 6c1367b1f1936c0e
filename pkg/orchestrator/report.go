package orchestrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	summaryStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

// Summary renders the batch outcome for the terminal: one line per figure,
// then counts and total time, then details for any failures.
func (r Report) Summary() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Figure generation"))
	b.WriteString("\n")

	passed := 0
	for _, res := range r.Results {
		if res.OK() {
			passed++
			b.WriteString(okStyle.Render("  ok  "))
			b.WriteString(res.Name)
			b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d files, %s)", len(res.Paths), res.Duration.Round(time.Millisecond))))
		} else {
			b.WriteString(failStyle.Render(" FAIL "))
			b.WriteString(res.Name)
		}
		b.WriteString("\n")
	}

	line := fmt.Sprintf("%d/%d figures generated in %s", passed, len(r.Results), r.Elapsed.Round(time.Millisecond))
	if r.OK() {
		b.WriteString(summaryStyle.Inherit(okStyle).Render(line))
	} else {
		b.WriteString(summaryStyle.Inherit(failStyle).Render(line))
	}
	b.WriteString("\n")

	for _, res := range r.Failed() {
		b.WriteString("\n")
		b.WriteString(failStyle.Render(res.Name+": ") + res.Err.Error())
		b.WriteString("\n")
		if res.Output != "" {
			b.WriteString(dimStyle.Render(res.Output))
			b.WriteString("\n")
		}
	}
	return b.String()
}

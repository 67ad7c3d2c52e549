package output

import (
	"strings"

	"github.com/abatilo/taskmgr/internal/report"
	"github.com/abatilo/taskmgr/internal/task"
)

// HumanFormatter prints one task rendering per line, with upper-cased
// category headings when the report is grouped.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t task.Task) string {
	return t.String() + "\n"
}

// FormatReport formats every group of a report.
func (f *HumanFormatter) FormatReport(r report.Report) string {
	var sb strings.Builder
	for _, g := range r.Groups {
		if r.Options.ByCategory {
			sb.WriteString(report.Heading(g.Category))
			sb.WriteString("\n")
		}
		for _, t := range g.Tasks {
			sb.WriteString(f.FormatTask(t))
		}
	}
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return err.Error() + "\n"
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

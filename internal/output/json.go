package output

import (
	"encoding/json"
	"time"

	"github.com/abatilo/taskmgr/internal/report"
	"github.com/abatilo/taskmgr/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// taskRecord is the structured representation of a task. Unbounded
// attributes are omitted.
type taskRecord struct {
	Name        string  `json:"name"                yaml:"name"`
	Description string  `json:"description"         yaml:"description"`
	Deadline    *string `json:"deadline,omitempty"  yaml:"deadline,omitempty"`
	Priority    *int    `json:"priority,omitempty"  yaml:"priority,omitempty"`
	TimeLeft    *int64  `json:"time_left,omitempty" yaml:"time_left,omitempty"`
}

// groupRecord is the structured representation of a report group.
type groupRecord struct {
	Category string       `json:"category,omitempty" yaml:"category,omitempty"`
	Tasks    []taskRecord `json:"tasks"              yaml:"tasks"`
}

// toTaskRecord converts t. Time left is included only when a deadline is
// set and now is known.
func toTaskRecord(t task.Task, now time.Time) taskRecord {
	rec := taskRecord{
		Name:        t.Name(),
		Description: t.Description(),
	}
	if task.HasDeadline(t) {
		s := task.FormatTimestamp(t.Deadline())
		rec.Deadline = &s
		if !now.IsZero() {
			left := task.TimeLeft(t, now)
			rec.TimeLeft = &left
		}
	}
	if task.HasPriority(t) {
		p := t.Priority()
		rec.Priority = &p
	}
	return rec
}

func toGroupRecords(r report.Report) []groupRecord {
	groups := make([]groupRecord, len(r.Groups))
	for i, g := range r.Groups {
		tasks := make([]taskRecord, len(g.Tasks))
		for j, t := range g.Tasks {
			tasks[j] = toTaskRecord(t, r.Now)
		}
		groups[i] = groupRecord{Category: g.Category, Tasks: tasks}
	}
	return groups
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t task.Task) string {
	return marshalJSON(toTaskRecord(t, time.Time{}))
}

// FormatReport formats a report as a JSON array of groups.
func (f *JSONFormatter) FormatReport(r report.Report) string {
	return marshalJSON(toGroupRecords(r))
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}

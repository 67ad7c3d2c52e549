package output

import (
	"bytes"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abatilo/taskmgr/internal/report"
	"github.com/abatilo/taskmgr/internal/task"
)

// YAMLFormatter formats output as YAML documents.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// marshalYAML encodes v as a single YAML document with 2-space indentation.
func marshalYAML(v any) string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "error: " + err.Error() + "\n"
	}
	_ = enc.Close()
	return buf.String()
}

// FormatTask formats a single task as YAML.
func (f *YAMLFormatter) FormatTask(t task.Task) string {
	return marshalYAML(toTaskRecord(t, time.Time{}))
}

// FormatReport formats a report as a YAML sequence of groups.
func (f *YAMLFormatter) FormatReport(r report.Report) string {
	return marshalYAML(toGroupRecords(r))
}

// FormatError formats an error as YAML.
func (f *YAMLFormatter) FormatError(err error) string {
	return marshalYAML(map[string]string{"error": err.Error()})
}

// FormatMessage formats a simple message as YAML.
func (f *YAMLFormatter) FormatMessage(msg string) string {
	return marshalYAML(map[string]string{"message": msg})
}

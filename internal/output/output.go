package output

import (
	"bufio"
	"io"

	tmerrors "github.com/abatilo/taskmgr/internal/errors"
	"github.com/abatilo/taskmgr/internal/report"
	"github.com/abatilo/taskmgr/internal/task"
)

// Format names accepted by New.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(t task.Task) string
	FormatReport(r report.Report) string
	FormatError(err error) string
	FormatMessage(msg string) string
}

// New returns the Formatter for a format name.
func New(format string) (Formatter, error) {
	switch format {
	case FormatHuman, "":
		return NewHumanFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	default:
		return nil, tmerrors.InvalidFormatError{Value: format}
	}
}

// Write renders r with f and writes it to w, flushing once.
func Write(w io.Writer, f Formatter, r report.Report) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(f.FormatReport(r)); err != nil {
		return err
	}
	return bw.Flush()
}

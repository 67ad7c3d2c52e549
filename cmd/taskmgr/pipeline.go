package main

import (
	"fmt"
	"io"

	tmerrors "github.com/abatilo/taskmgr/internal/errors"
	"github.com/abatilo/taskmgr/internal/output"
	"github.com/abatilo/taskmgr/internal/parser"
	"github.com/abatilo/taskmgr/internal/report"
	"github.com/abatilo/taskmgr/internal/storage"
	"github.com/abatilo/taskmgr/internal/task"
)

const separator = "-------------------------"

// demoModes is the order in which the run command prints the four modes.
//
//nolint:gochecknoglobals // fixed table of display modes
var demoModes = []struct {
	banner string
	opts   report.Options
}{
	{"By categories with priority", report.Options{ByPriority: true, ByCategory: true}},
	{"By categories without priority", report.Options{ByPriority: false, ByCategory: true}},
	{"All tasks without priority", report.Options{ByPriority: false, ByCategory: false}},
	{"All tasks with priority", report.Options{ByPriority: true, ByCategory: false}},
}

// pipeline ties the parser, store and formatter to one input and output.
type pipeline struct {
	out       io.Writer
	formatter output.Formatter
	clock     task.Clock
	store     *storage.Store
}

func newPipeline(out io.Writer, f output.Formatter, clock task.Clock) *pipeline {
	if clock == nil {
		clock = task.SystemClock
	}
	return &pipeline{out: out, formatter: f, clock: clock, store: storage.NewStore()}
}

func (p *pipeline) write(s string) error {
	_, err := io.WriteString(p.out, s)
	return err
}

// load reads every task from in. Rejected lines are passed to onError.
func (p *pipeline) load(in io.Reader, onError func(tmerrors.LineError)) error {
	return parser.New(p.clock).ReadAll(in, p.store, onError)
}

// render writes the store in one display mode, measured against the
// clock at the time of the call.
func (p *pipeline) render(opts report.Options) error {
	return output.Write(p.out, p.formatter, report.Build(p.store, opts, p.clock()))
}

// runDemo reads in and prints all four display modes, each under a banner.
// Rejected lines are reported inline and do not stop the run.
func runDemo(in io.Reader, out io.Writer, f output.Formatter, clock task.Clock) error {
	p := newPipeline(out, f, clock)

	if err := p.write(f.FormatMessage("Tasks reading")); err != nil {
		return err
	}

	var writeErr error
	loadErr := p.load(in, func(e tmerrors.LineError) {
		if writeErr == nil {
			writeErr = p.write(f.FormatError(e.Err))
		}
	})
	if loadErr != nil {
		return loadErr
	}
	if writeErr != nil {
		return writeErr
	}

	for _, mode := range demoModes {
		if err := p.write(f.FormatMessage(mode.banner)); err != nil {
			return err
		}
		if err := p.render(mode.opts); err != nil {
			return err
		}
		if err := p.write(f.FormatMessage(separator)); err != nil {
			return err
		}
	}
	return nil
}

// checkSummary is the result of validating an input without rendering it.
type checkSummary struct {
	Tasks      int
	Categories int
	Rejected   []tmerrors.LineError
}

func (s checkSummary) String() string {
	return fmt.Sprintf("%d task(s) in %d category(ies), %d rejected line(s)",
		s.Tasks, s.Categories, len(s.Rejected))
}

// check parses in and collects every rejected line.
func check(in io.Reader, clock task.Clock) (checkSummary, error) {
	p := newPipeline(io.Discard, output.NewHumanFormatter(), clock)

	var summary checkSummary
	if err := p.load(in, func(e tmerrors.LineError) {
		summary.Rejected = append(summary.Rejected, e)
	}); err != nil {
		return checkSummary{}, err
	}
	summary.Tasks = p.store.Len()
	summary.Categories = len(p.store.Categories())
	return summary, nil
}

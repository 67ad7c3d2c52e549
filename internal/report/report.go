package report

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/abatilo/taskmgr/internal/storage"
	"github.com/abatilo/taskmgr/internal/task"
)

// Options selects one of the four display modes.
type Options struct {
	// ByPriority orders by priority first and time left second.
	// Otherwise tasks are ordered by time left only.
	ByPriority bool
	// ByCategory groups tasks under their upper-cased category.
	// Otherwise all tasks are printed as one list.
	ByCategory bool
}

// Group is a run of sorted tasks. Category is empty for an ungrouped report.
type Group struct {
	Category string
	Tasks    []task.Task
}

// Report is the sorted content of a store for one display mode.
type Report struct {
	Options Options
	// Now is the instant time left was measured against.
	Now    time.Time
	Groups []Group
}

// Compare returns the task ordering for opts, measuring time left against now.
func Compare(opts Options, now time.Time) func(a, b task.Task) int {
	byTimeLeft := func(a, b task.Task) int {
		return cmp.Compare(task.TimeLeft(a, now), task.TimeLeft(b, now))
	}
	if !opts.ByPriority {
		return byTimeLeft
	}
	return func(a, b task.Task) int {
		if c := cmp.Compare(a.Priority(), b.Priority()); c != 0 {
			return c
		}
		return byTimeLeft(a, b)
	}
}

// Build sorts the store's tasks for opts. Sorting is stable, so tasks with
// equal keys keep their insertion order.
func Build(store *storage.Store, opts Options, now time.Time) Report {
	compare := Compare(opts, now)
	r := Report{Options: opts, Now: now}

	if !opts.ByCategory {
		tasks := store.All()
		slices.SortStableFunc(tasks, compare)
		r.Groups = []Group{{Tasks: tasks}}
		return r
	}

	for _, category := range store.Categories() {
		tasks := store.Tasks(category)
		slices.SortStableFunc(tasks, compare)
		r.Groups = append(r.Groups, Group{Category: category, Tasks: tasks})
	}
	return r
}

// Heading returns the header line printed above a category group.
func Heading(category string) string {
	return strings.ToUpper(category)
}

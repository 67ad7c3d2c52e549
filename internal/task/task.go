package task

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxPriority is the priority of a task that was given none.
// Lower values are more urgent, so unprioritized tasks sort last.
const MaxPriority = math.MaxInt32

// MaxDeadline is the deadline of a task that was given none.
//
//nolint:gochecknoglobals // sentinel instant, never mutated
var MaxDeadline = time.Date(999999999, time.December, 31, 23, 59, 59, 999999999, time.UTC)

// Clock reports the current wall-clock time. It is called on every use so
// that "now" is never frozen.
type Clock func() time.Time

// SystemClock is the default Clock.
func SystemClock() time.Time {
	return time.Now()
}

// Task is implemented by the base task and by the attribute wrappers.
// The set of implementations is closed to this package.
type Task interface {
	Name() string
	Description() string
	Deadline() time.Time
	Priority() int
	// String renders the task as Task{name='..', description='..'[, attr=..]}.
	String() string

	sealed()
}

// Base is a task with only a name and description.
type Base struct {
	name        string
	description string
}

// New creates a base task with no deadline and no priority.
func New(name, description string) *Base {
	return &Base{name: name, description: description}
}

func (b *Base) Name() string        { return b.name }
func (b *Base) Description() string { return b.description }
func (b *Base) Deadline() time.Time { return MaxDeadline }
func (b *Base) Priority() int       { return MaxPriority }
func (b *Base) sealed()             {}

func (b *Base) String() string {
	var sb strings.Builder
	sb.WriteString("Task{")
	sb.WriteString("name='" + b.name + "'")
	sb.WriteString(", description='" + b.description + "'")
	sb.WriteString("}")
	return sb.String()
}

// deadlineTask overrides the deadline of the wrapped task.
type deadlineTask struct {
	Task
	deadline time.Time
}

// WithDeadline wraps t so that it reports deadline and delegates everything else.
func WithDeadline(t Task, deadline time.Time) Task {
	return &deadlineTask{Task: t, deadline: deadline}
}

func (d *deadlineTask) Deadline() time.Time { return d.deadline }

func (d *deadlineTask) String() string {
	return appendAttr(d.Task.String(), "deadline", FormatTimestamp(d.deadline))
}

// priorityTask overrides the priority of the wrapped task.
type priorityTask struct {
	Task
	priority int
}

// WithPriority wraps t so that it reports priority and delegates everything else.
func WithPriority(t Task, priority int) Task {
	return &priorityTask{Task: t, priority: priority}
}

func (p *priorityTask) Priority() int { return p.priority }

func (p *priorityTask) String() string {
	return appendAttr(p.Task.String(), "priority", strconv.Itoa(p.priority))
}

// appendAttr reopens a rendered task's closing brace and adds key=value.
func appendAttr(rendered, key, value string) string {
	return strings.TrimSuffix(rendered, "}") + ", " + key + "=" + value + "}"
}

// HasDeadline reports whether t carries a concrete deadline.
func HasDeadline(t Task) bool {
	return !t.Deadline().Equal(MaxDeadline)
}

// HasPriority reports whether t carries a concrete priority.
func HasPriority(t Task) bool {
	return t.Priority() != MaxPriority
}

// TimeLeft returns the absolute number of whole seconds between now and the
// task's deadline. Seconds are floored the way a signed duration would be
// before the absolute value is taken.
func TimeLeft(t Task, now time.Time) int64 {
	deadline := t.Deadline()
	secs := deadline.Unix() - now.Unix()
	if deadline.Nanosecond() < now.Nanosecond() {
		secs--
	}
	if secs < 0 {
		return -secs
	}
	return secs
}

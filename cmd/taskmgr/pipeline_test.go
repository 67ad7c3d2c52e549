//nolint:testpackage // Tests require internal access for thorough testing
package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abatilo/taskmgr/internal/output"
	"github.com/abatilo/taskmgr/internal/report"
)

func fixedClock() time.Time {
	return time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)
}

const sampleInput = `work,Report,Finish Q3 report,2099-01-01T00:00:00,1
work,Old,Stale,2020-01-01T00:00:00
home,Clean,Tidy garage,5
`

const (
	cleanLine  = "Task{name='Clean', description='Tidy garage', priority=5}\n"
	reportLine = "Task{name='Report', description='Finish Q3 report', deadline=2099-01-01T00:00:00, priority=1}\n"
	sepLine    = separator + "\n"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	err := runDemo(strings.NewReader(sampleInput), &out, output.NewHumanFormatter(), fixedClock)
	require.NoError(t, err)

	want := "Tasks reading\n" +
		"The deadline 2020-01-01T00:00:00 has already passed\n" +
		"By categories with priority\n" +
		"HOME\n" + cleanLine + "WORK\n" + reportLine + sepLine +
		"By categories without priority\n" +
		"HOME\n" + cleanLine + "WORK\n" + reportLine + sepLine +
		"All tasks without priority\n" +
		reportLine + cleanLine + sepLine +
		"All tasks with priority\n" +
		reportLine + cleanLine + sepLine

	assert.Equal(t, want, out.String())
}

func TestRunDemoEmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDemo(strings.NewReader(""), &out, output.NewHumanFormatter(), fixedClock))

	want := "Tasks reading\n" +
		"By categories with priority\n" + sepLine +
		"By categories without priority\n" + sepLine +
		"All tasks without priority\n" + sepLine +
		"All tasks with priority\n" + sepLine
	assert.Equal(t, want, out.String())
}

func TestRenderReadsClockPerCall(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)
	p := newPipeline(nil, output.NewHumanFormatter(), func() time.Time { return now })

	input := "a,Early,x,2030-01-01T01:00:00\n" +
		"a,Late,x,2030-01-01T05:00:00\n"
	require.NoError(t, p.load(strings.NewReader(input), nil))

	var first bytes.Buffer
	p.out = &first
	require.NoError(t, p.render(report.Options{}))
	assert.True(t, strings.HasPrefix(first.String(), "Task{name='Early'"))

	// Past both deadlines, Early is now the farthest away.
	now = time.Date(2030, 1, 2, 0, 0, 0, 0, time.Local)
	var second bytes.Buffer
	p.out = &second
	require.NoError(t, p.render(report.Options{}))
	assert.True(t, strings.HasPrefix(second.String(), "Task{name='Late'"))
}

func TestCheck(t *testing.T) {
	input := sampleInput + "broken line\n"

	summary, err := check(strings.NewReader(input), fixedClock)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Tasks)
	assert.Equal(t, 2, summary.Categories)
	require.Len(t, summary.Rejected, 2)
	assert.Equal(t, 2, summary.Rejected[0].Line)
	assert.Equal(t, 4, summary.Rejected[1].Line)
	assert.Equal(t, "2 task(s) in 2 category(ies), 2 rejected line(s)", summary.String())
}

package parser

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	tmerrors "github.com/abatilo/taskmgr/internal/errors"
	"github.com/abatilo/taskmgr/internal/task"
)

const (
	fieldSeparator = ","

	fieldsBase           = 3
	fieldsOneAttribute   = 4
	fieldsBothAttributes = 5
)

// Inserter receives successfully parsed tasks.
type Inserter interface {
	Insert(category string, t task.Task)
}

// Parser turns task lines into decorated tasks.
type Parser struct {
	now task.Clock
}

// New creates a Parser that validates deadlines against now.
// A nil clock uses the system clock.
func New(now task.Clock) *Parser {
	if now == nil {
		now = task.SystemClock
	}
	return &Parser{now: now}
}

// splitFields splits a line on commas and drops trailing empty fields.
func splitFields(line string) []string {
	fields := strings.Split(line, fieldSeparator)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// Category returns the first comma-separated field of line.
func Category(line string) string {
	category, _, _ := strings.Cut(line, fieldSeparator)
	return category
}

// ParseLine parses category,name,description[,field4[,field5]].
// The category is returned even when the rest of the line fails to parse.
func (p *Parser) ParseLine(line string) (string, task.Task, error) {
	category := Category(line)
	fields := splitFields(line)

	switch len(fields) {
	case fieldsBase, fieldsOneAttribute, fieldsBothAttributes:
	default:
		return category, nil, tmerrors.FieldCountError{Count: len(fields)}
	}

	t := task.Task(task.New(fields[1], fields[2]))

	switch len(fields) {
	case fieldsOneAttribute:
		if priority, ok := parsePriority(fields[3]); ok {
			return category, task.WithPriority(t, priority), nil
		}
		deadline, err := task.ParseTimestamp(fields[3])
		if err != nil {
			return category, nil, tmerrors.UnparseableFieldError{Value: fields[3]}
		}
		if err = p.checkDeadline(deadline); err != nil {
			return category, nil, err
		}
		return category, task.WithDeadline(t, deadline), nil

	case fieldsBothAttributes:
		deadline, err := task.ParseTimestamp(fields[3])
		if err != nil {
			return category, nil, tmerrors.MalformedTimestampError{Value: fields[3]}
		}
		if err = p.checkDeadline(deadline); err != nil {
			return category, nil, err
		}
		priority, ok := parsePriority(fields[4])
		if !ok {
			return category, nil, tmerrors.MalformedIntegerError{Value: fields[4]}
		}
		return category, task.WithPriority(task.WithDeadline(t, deadline), priority), nil
	}

	return category, t, nil
}

// parsePriority accepts a signed 32-bit decimal integer.
func parsePriority(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func (p *Parser) checkDeadline(deadline time.Time) error {
	if deadline.Before(p.now()) {
		return tmerrors.DeadlineInPastError{Deadline: deadline}
	}
	return nil
}

// ReadAll parses every line of r and inserts the resulting tasks into dst.
// Lines that fail to parse are skipped and passed to onError as a
// tmerrors.LineError; only read failures are returned.
func (p *Parser) ReadAll(r io.Reader, dst Inserter, onError func(tmerrors.LineError)) error {
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}
		if line == "" && readErr != nil {
			return nil
		}
		lineNo++

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			category, t, err := p.ParseLine(line)
			if err != nil {
				if onError != nil {
					onError(tmerrors.LineError{Line: lineNo, Category: category, Err: err})
				}
			} else {
				dst.Insert(category, t)
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

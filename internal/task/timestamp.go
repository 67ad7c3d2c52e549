package task

import (
	"errors"
	"time"
)

const (
	// TimestampLayout is the rendering layout for deadlines. Fractional
	// seconds are printed only when present.
	TimestampLayout = "2006-01-02T15:04:05.999999999"

	secondsLayout = "2006-01-02T15:04:05"
	minutesLayout = "2006-01-02T15:04"
)

var errTimestampFormat = errors.New("unrecognized timestamp format")

// ParseTimestamp parses a local date-time without a zone, such as
// 2099-01-01T00:00:00 or 2099-01-01T00:00. Fractional seconds are accepted.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{secondsLayout, minutesLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errTimestampFormat
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

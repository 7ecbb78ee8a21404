package repository

import (
	"fmt"
	"time"
)

// DateTimeLayout is the storage format for timestamp columns.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the storage format for date-only columns.
const DateLayout = "2006-01-02"

// ParseTime parses a date string in "2006-01-02", "2006-01-02 15:04:05" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{DateLayout, DateTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}

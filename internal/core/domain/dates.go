package domain

import (
	"fmt"
	"time"
)

// ISODate is the calendar date layout used by every date parameter
// and payload field in the Parliament datasets.
const ISODate = "2006-01-02"

// ParseISODate parses an optional YYYY-MM-DD parameter. An empty string
// returns nil (the parameter was not supplied). A malformed value returns
// ErrInvalidDate wrapped with the offending input.
func ParseISODate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(ISODate, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, value)
	}
	return &t, nil
}

// ParsePayloadDate parses a date or datetime string coming back from a
// backend payload. Payload dates appear both as bare calendar dates and as
// full RFC 3339 timestamps depending on the loader that wrote them.
// Returns the zero time for empty or unparseable input; payload dates are
// display metadata, not control flow.
func ParsePayloadDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", ISODate} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

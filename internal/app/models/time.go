package models

import (
	"bytes"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type TimeModel struct {
	CreatedAt Date `json:"createdAt" bson:"createdAt"`
	UpdatedAt Date `json:"updatedAt" bson:"updatedAt"`
}

// Date accepts either an RFC 3339 timestamp or a plain calendar date. Any
// other value, including non-string JSON, decodes to the zero date.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	d.Time = parseDate(data)
	return nil
}

func parseDate(data []byte) time.Time {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) < 2 || trimmed[0] != '"' || trimmed[len(trimmed)-1] != '"' {
		return time.Time{}
	}
	value := strings.TrimSpace(string(trimmed[1 : len(trimmed)-1]))
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(dateLayout, value); err == nil {
		return parsed
	}
	return time.Time{}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

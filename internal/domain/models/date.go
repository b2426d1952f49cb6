// internal/domain/models/date.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the layout Date marshals to.
const DateLayout = "2006-01-02"

// dateLayouts are tried in order when decoding. The course API emits
// zone-less timestamps ("2024-09-01T00:00:00").
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	DateLayout,
}

// Date is a calendar date carried over JSON.
//
// Decoding never fails: a value in none of the known layouts is kept in
// Raw and passed through unchanged.
type Date struct {
	time.Time
	Raw string
}

// ParseDate parses s using the layouts Date accepts.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("parse date %q: unrecognized layout", s)
}

// IsZero reports whether d carries neither a parsed time nor a raw value.
func (d Date) IsZero() bool {
	return d.Time.IsZero() && d.Raw == ""
}

// Parsed reports whether d holds a time decoded from a known layout.
func (d Date) Parsed() bool {
	return !d.Time.IsZero()
}

func (d Date) String() string {
	if d.Parsed() {
		return d.Format(DateLayout)
	}
	return d.Raw
}

func (d Date) MarshalJSON() ([]byte, error) {
	switch {
	case d.Parsed():
		return json.Marshal(d.Format(DateLayout))
	case d.Raw != "":
		return json.Marshal(d.Raw)
	}
	return []byte("null"), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Not a string (a number, say). Keep the token text as-is.
		*d = Date{Raw: string(b)}
		return nil
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if parsed, err := ParseDate(s); err == nil {
		*d = parsed
		return nil
	}
	*d = Date{Raw: s}
	return nil
}

package storage

import (
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for timestamps in collection files.
const DateTimeLayout = "02/01/2006 15:04"

// DateTime is a time.Time that serializes as a dd/MM/yyyy HH:mm string.
// Use a *DateTime for optional timestamps; nil marshals as JSON null.
type DateTime struct {
	time.Time
}

// Now returns the current time as a DateTime.
func Now() DateTime {
	return DateTime{time.Now()}
}

// At wraps a time.Time.
func At(t time.Time) DateTime {
	return DateTime{t}
}

// ParseDateTime parses a dd/MM/yyyy HH:mm string.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid date/time %q, expected dd/MM/yyyy HH:mm", s)
	}
	return DateTime{t}, nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date/time value %s", s)
	}
	parsed, err := ParseDateTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

func (d DateTime) String() string {
	if d.IsZero() {
		return "N/A"
	}
	return d.Format(DateTimeLayout)
}

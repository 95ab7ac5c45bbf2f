package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the wire format of a Date at every serialization boundary.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone. Review scheduling works
// at day granularity, so arithmetic happens on Date values and the YYYY-MM-DD
// string form only appears in SQL parameters, JSON and exports.
type Date struct {
	civil.Date
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{d}, nil
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{d.Date.AddDays(n)}
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool {
	return d.Date.Before(o.Date)
}

// After reports whether d is after o.
func (d Date) After(o Date) bool {
	return d.Date.After(o.Date)
}

// DaysSince returns the number of days from o to d.
func (d Date) DaysSince(o Date) int {
	return d.Date.DaysSince(o.Date)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.Date == civil.Date{}
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	return d.Date.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. Dates are persisted as YYYY-MM-DD text.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. SQLite returns the stored text while
// PostgreSQL DATE columns arrive as time.Time.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date{civil.Date{Year: v.Year(), Month: v.Month(), Day: v.Day()}}
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into Date", ErrInvalidDate, src)
	}
}

package models

import (
	"fmt"
	"time"
)

// UnknownMonth is the month label assigned to rows carrying MissingDate.
const UnknownMonth = "unknown"

// Date is a calendar date encoded as YYYYMMDD. The zero value is MissingDate.
type Date int32

// MissingDate marks a date that could not be parsed.
const MissingDate Date = 0

// NewDate builds a Date from its calendar parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date(year*10000 + int(month)*100 + day)
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// IsMissing reports whether d is the missing-date sentinel.
func (d Date) IsMissing() bool {
	return d == MissingDate
}

// Year returns the calendar year.
func (d Date) Year() int {
	return int(d) / 10000
}

// Month returns the calendar month.
func (d Date) Month() time.Month {
	return time.Month(int(d) / 100 % 100)
}

// Day returns the day of month.
func (d Date) Day() int {
	return int(d) % 100
}

// Time returns midnight UTC of d, or the zero time for MissingDate.
func (d Date) Time() time.Time {
	if d.IsMissing() {
		return time.Time{}
	}

	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthLabel returns the sortable "YYYY-MM" label, or UnknownMonth.
func (d Date) MonthLabel() string {
	if d.IsMissing() {
		return UnknownMonth
	}

	return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
}

// Less orders dates chronologically with MissingDate after every real date.
func (d Date) Less(o Date) bool {
	if d.IsMissing() {
		return false
	}

	if o.IsMissing() {
		return true
	}

	return d < o
}

// String formats d as YYYY-MM-DD; MissingDate prints as "NaT".
func (d Date) String() string {
	if d.IsMissing() {
		return "NaT"
	}

	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// ISO formats d the way the dashboard reads timestamps.
func (d Date) ISO() string {
	return d.String() + "T00:00:00.000"
}

// MarshalJSON encodes d as an ISO timestamp string, or null when missing.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsMissing() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.ISO() + `"`), nil
}

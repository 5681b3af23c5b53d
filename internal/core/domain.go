package core

import (
	"errors"
	"fmt"
	"time"
)

// Symptoms is the fixed set of recognized symptom identifiers, in the
// canonical column order used everywhere (CSV header, summaries, charts).
var Symptoms = []string{
	"Cramps",
	"Bloating",
	"Mood Swings",
	"Fatigue",
	"Headaches",
	"Back Pain",
	"Food Cravings",
	"Acne",
}

type (
	Date struct {
		time.Time
	}

	// Record is one day's entry: a date plus a presence flag per symptom.
	// Symptoms absent from Flags count as not present.
	Record struct {
		Date  Date
		Flags map[string]bool
	}
)

var (
	ErrZeroDate       = errors.New("date cannot be zero")
	ErrUnknownSymptom = errors.New("unknown symptom")
)

// NewDate creates a new Date from year, month, day (UTC, midnight).
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date string. Accepts plain dates and the timestamp
// form older data files used.
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), int(t.Month()), t.Day()), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// Key returns the date in its serialized YYYY-MM-DD form. It is the
// uniqueness key within a Table.
func (d Date) Key() string {
	return d.Format("2006-01-02")
}

// NewRecord builds a Record for the given date from a flag map. Unknown
// flag names are preserved so Validate can reject them.
func NewRecord(date Date, flags map[string]bool) Record {
	copied := make(map[string]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}
	return Record{Date: date, Flags: copied}
}

// Flag reports whether the named symptom was present. Unset symptoms
// read as false.
func (r Record) Flag(name string) bool {
	return r.Flags[name]
}

func (r Record) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}
	for name := range r.Flags {
		if !IsSymptom(name) {
			return fmt.Errorf("%w: %q", ErrUnknownSymptom, name)
		}
	}
	return nil
}

// IsSymptom reports whether name is a recognized symptom identifier.
func IsSymptom(name string) bool {
	for _, s := range Symptoms {
		if s == name {
			return true
		}
	}
	return false
}

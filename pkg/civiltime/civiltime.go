// Package civiltime centralizes conversions between civil date/time fields
// and instants. All scheduling math runs in one fixed business timezone;
// constructing instants anywhere else invites off-by-one-day errors around
// DST transitions.
package civiltime

import (
	"fmt"
	"time"

	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// DateFormat is the wire format for civil dates
const DateFormat = "2006-01-02"

// Converter converts between civil fields and instants in a single location
type Converter struct {
	loc *time.Location
}

// New loads the business timezone by IANA name, e.g. "Europe/Berlin"
func New(name string) (*Converter, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("civiltime: failed to load location %q: %w", name, err)
	}
	return &Converter{loc: loc}, nil
}

// Location returns the business timezone
func (c *Converter) Location() *time.Location {
	return c.loc
}

// At returns the instant of a civil date and time of day in the business timezone
func (c *Converter) At(date string, tod types.TimeString) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, date, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("civiltime: invalid date %q: %w", date, err)
	}
	minutes, err := tod.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, c.loc), nil
}

// ParseDate parses a civil date string into the midnight instant in the business timezone
func (c *Converter) ParseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, date, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("civiltime: invalid date %q: %w", date, err)
	}
	return d, nil
}

// DateOf returns the civil date string of an instant in the business timezone
func (c *Converter) DateOf(t time.Time) string {
	return t.In(c.loc).Format(DateFormat)
}

// TimeOf returns the civil time of day of an instant in the business timezone
func (c *Converter) TimeOf(t time.Time) types.TimeString {
	return types.NewTimeString(t.In(c.loc))
}

// StartOfDay returns midnight of the instant's civil date in the business timezone
func (c *Converter) StartOfDay(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

// Weekday returns the civil weekday of an instant in the business timezone
func (c *Converter) Weekday(t time.Time) time.Weekday {
	return t.In(c.loc).Weekday()
}

package domain

import (
	"time"

	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// TimeSlotDay groups the bookable times of one calendar date.
// Days without any bookable time are omitted from availability responses,
// so "date present" means "bookable".
type TimeSlotDay struct {
	Date  string             `json:"date"` // YYYY-MM-DD
	Times []types.TimeString `json:"times"`
}

// BusyInterval is an occupied interval reported by the external calendar
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) intersects the busy interval.
// Half-open test: touching boundaries do not count as overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}

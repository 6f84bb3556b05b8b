package domain

import (
	"fmt"
	"time"

	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

var germanWeekdays = [...]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FormatGermanDate renders an instant's civil date for emails and responses,
// e.g. "Montag, 5. Januar 2026".
func FormatGermanDate(t time.Time) string {
	return fmt.Sprintf("%s, %d. %s %d",
		germanWeekdays[t.Weekday()], t.Day(), germanMonths[t.Month()-1], t.Year())
}

// FormatGermanTime renders a time of day for emails and responses, e.g. "15:00 Uhr"
func FormatGermanTime(t types.TimeString) string {
	return t.String() + " Uhr"
}

package domain

import (
	"time"

	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// BookingStatus represents the pipeline status of a booking.
// Values are the German select options of the backing database.
type BookingStatus string

const (
	StatusScheduled BookingStatus = "Geplant"
	StatusCompleted BookingStatus = "Abgeschlossen"
	StatusCancelled BookingStatus = "Abgesagt"
	StatusNoShow    BookingStatus = "No-Show"
)

// IsActive returns true if the booking still occupies its slot
func (s BookingStatus) IsActive() bool {
	return s == StatusScheduled
}

// CandidateProfile holds the contact form data submitted with a booking
type CandidateProfile struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Position        string   `json:"position"`
	AvailableFrom   string   `json:"availableFrom"` // notice period, free text
	Regions         []string `json:"regions"`
	Salary          string   `json:"salary"` // free text
	EmploymentTypes []string `json:"employmentTypes"`
	WorkTime        string   `json:"workTime"`
	WorkLocation    string   `json:"workLocation"`
	ContractTypes   []string `json:"contractTypes"`
	LinkedIn        string   `json:"linkedIn,omitempty"`
}

// FullName returns "First Last"
func (c *CandidateProfile) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Booking is the record shape owned by the external database.
// The service creates it, reads it and updates its status; there is no
// deletion path.
type Booking struct {
	ID            string // page id in the external database
	Candidate     CandidateProfile
	StartDateTime time.Time // instant of the meeting start
	DurationMins  int
	Status        BookingStatus
	EventID       string // external calendar event reference
	MeetingLink   string
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// CanBeRescheduled returns true if the booking can still be moved
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusScheduled
}

// Slot is a bookable (date, time-of-day, duration) unit chosen by a candidate
type Slot struct {
	Date            string // YYYY-MM-DD
	StartTime       types.TimeString
	DurationMinutes int
}

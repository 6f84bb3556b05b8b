package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/notion"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

type fakeRecords struct {
	booking       *domain.Booking
	getErr        error
	statusErr     error
	meetingErr    error
	statusUpdates []domain.BookingStatus
	meetingMoves  []time.Time
}

func (f *fakeRecords) GetRecord(_ context.Context, _ string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copy := *f.booking
	return &copy, nil
}

func (f *fakeRecords) UpdateStatus(_ context.Context, _ string, status domain.BookingStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeRecords) UpdateMeeting(_ context.Context, _ string, start time.Time, _ int) error {
	if f.meetingErr != nil {
		return f.meetingErr
	}
	f.meetingMoves = append(f.meetingMoves, start)
	return nil
}

type fakeCalendar struct {
	updateErr error
	deleteErr error
	updated   []string
	deleted   []string
}

func (f *fakeCalendar) UpdateEventTime(_ context.Context, eventID, _ string, _ types.TimeString, _ int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, eventID)
	return nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeMailer struct {
	confirmations []resend.ConfirmationEmail
	cancellations []resend.CancellationEmail
}

func (f *fakeMailer) SendConfirmation(_ context.Context, email resend.ConfirmationEmail) error {
	f.confirmations = append(f.confirmations, email)
	return nil
}

func (f *fakeMailer) SendCancellation(_ context.Context, email resend.CancellationEmail) error {
	f.cancellations = append(f.cancellations, email)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService(t *testing.T, records *fakeRecords, calendar *fakeCalendar, mailer *fakeMailer) *Service {
	t.Helper()
	conv, err := civiltime.New("Europe/Berlin")
	require.NoError(t, err)
	return NewService(records, calendar, mailer, conv, nopLogger{})
}

func scheduledBooking() *domain.Booking {
	b := &domain.Booking{
		ID:            "rec-1",
		StartDateTime: time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC),
		DurationMins:  30,
		Status:        domain.StatusScheduled,
		EventID:       "ev-1",
		MeetingLink:   "https://teams.microsoft.com/l/meetup-join/abc",
	}
	b.Candidate.FirstName = "Anna"
	b.Candidate.LastName = "Schmidt"
	b.Candidate.Email = "anna.schmidt@example.de"
	return b
}

func TestCancel_Success(t *testing.T) {
	records := &fakeRecords{booking: scheduledBooking()}
	calendar := &fakeCalendar{}
	mailer := &fakeMailer{}
	svc := testService(t, records, calendar, mailer)

	err := svc.Cancel(context.Background(), "rec-1")

	require.NoError(t, err)
	assert.Equal(t, []domain.BookingStatus{domain.StatusCancelled}, records.statusUpdates)
	assert.Equal(t, []string{"ev-1"}, calendar.deleted)
	require.Len(t, mailer.cancellations, 1)
	assert.Equal(t, "anna.schmidt@example.de", mailer.cancellations[0].To)
}

func TestCancel_NotFound(t *testing.T) {
	records := &fakeRecords{getErr: notion.ErrRecordNotFound}
	svc := testService(t, records, &fakeCalendar{}, &fakeMailer{})

	err := svc.Cancel(context.Background(), "rec-unbekannt")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := scheduledBooking()
	booking.Status = domain.StatusCancelled
	records := &fakeRecords{booking: booking}
	svc := testService(t, records, &fakeCalendar{}, &fakeMailer{})

	err := svc.Cancel(context.Background(), "rec-1")

	assert.ErrorIs(t, err, ErrBookingNotActive)
	assert.Empty(t, records.statusUpdates)
}

func TestCancel_CalendarFailureIsTolerated(t *testing.T) {
	records := &fakeRecords{booking: scheduledBooking()}
	calendar := &fakeCalendar{deleteErr: errors.New("graph down")}
	mailer := &fakeMailer{}
	svc := testService(t, records, calendar, mailer)

	err := svc.Cancel(context.Background(), "rec-1")

	require.NoError(t, err)
	assert.Equal(t, []domain.BookingStatus{domain.StatusCancelled}, records.statusUpdates)
	assert.Len(t, mailer.cancellations, 1)
}

func TestCancel_StatusUpdateFailureIsFatal(t *testing.T) {
	records := &fakeRecords{booking: scheduledBooking(), statusErr: errors.New("notion down")}
	calendar := &fakeCalendar{}
	svc := testService(t, records, calendar, &fakeMailer{})

	err := svc.Cancel(context.Background(), "rec-1")

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, calendar.deleted)
}

func TestReschedule_Success(t *testing.T) {
	records := &fakeRecords{booking: scheduledBooking()}
	calendar := &fakeCalendar{}
	mailer := &fakeMailer{}
	svc := testService(t, records, calendar, mailer)

	booking, err := svc.Reschedule(context.Background(), "rec-1", domain.Slot{
		Date:            "2026-01-08",
		StartTime:       "14:00",
		DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, 45, booking.DurationMins)
	assert.Equal(t, "2026-01-08", booking.StartDateTime.Format("2006-01-02"))

	require.Len(t, records.meetingMoves, 1)
	assert.Equal(t, []string{"ev-1"}, calendar.updated)

	require.Len(t, mailer.confirmations, 1)
	assert.Equal(t, "Donnerstag, 8. Januar 2026", mailer.confirmations[0].Date)
	assert.Equal(t, "14:00 Uhr", mailer.confirmations[0].Time)
}

func TestReschedule_KeepsDurationWhenOmitted(t *testing.T) {
	records := &fakeRecords{booking: scheduledBooking()}
	svc := testService(t, records, &fakeCalendar{}, &fakeMailer{})

	booking, err := svc.Reschedule(context.Background(), "rec-1", domain.Slot{
		Date:      "2026-01-08",
		StartTime: "14:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 30, booking.DurationMins)
}

func TestReschedule_NotActive(t *testing.T) {
	booking := scheduledBooking()
	booking.Status = domain.StatusCompleted
	records := &fakeRecords{booking: booking}
	svc := testService(t, records, &fakeCalendar{}, &fakeMailer{})

	_, err := svc.Reschedule(context.Background(), "rec-1", domain.Slot{
		Date:      "2026-01-08",
		StartTime: "14:00",
	})

	assert.ErrorIs(t, err, ErrBookingNotActive)
}

func TestReschedule_RecordUpdateFailureIsFatal(t *testing.T) {
	records := &fakeRecords{booking: scheduledBooking(), meetingErr: errors.New("notion down")}
	calendar := &fakeCalendar{}
	svc := testService(t, records, calendar, &fakeMailer{})

	_, err := svc.Reschedule(context.Background(), "rec-1", domain.Slot{
		Date:      "2026-01-08",
		StartTime: "14:00",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, calendar.updated)
}

func TestReschedule_CalendarFailureIsTolerated(t *testing.T) {
	records := &fakeRecords{booking: scheduledBooking()}
	calendar := &fakeCalendar{updateErr: errors.New("graph down")}
	mailer := &fakeMailer{}
	svc := testService(t, records, calendar, mailer)

	_, err := svc.Reschedule(context.Background(), "rec-1", domain.Slot{
		Date:      "2026-01-08",
		StartTime: "14:00",
	})

	require.NoError(t, err)
	assert.Len(t, records.meetingMoves, 1)
	assert.Len(t, mailer.confirmations, 1)
}

func TestReschedule_InvalidSlot(t *testing.T) {
	records := &fakeRecords{booking: scheduledBooking()}
	svc := testService(t, records, &fakeCalendar{}, &fakeMailer{})

	_, err := svc.Reschedule(context.Background(), "rec-1", domain.Slot{
		Date:      "08.01.2026",
		StartTime: "14:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

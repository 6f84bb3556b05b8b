package send_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
)

type fakeRecords struct {
	bookings []domain.Booking
	err      error
}

func (f *fakeRecords) QueryScheduled(_ context.Context) ([]domain.Booking, error) {
	return f.bookings, f.err
}

type fakeMailer struct {
	failFor map[string]error
	sent    []resend.ReminderEmail
}

func (f *fakeMailer) SendReminder(_ context.Context, email resend.ReminderEmail) error {
	if err, ok := f.failFor[email.To]; ok {
		return err
	}
	f.sent = append(f.sent, email)
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T, records *fakeRecords, mailer *fakeMailer, now time.Time) *UseCase {
	t.Helper()
	conv, err := civiltime.New("Europe/Berlin")
	require.NoError(t, err)
	uc := NewUseCase(records, mailer, conv, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func scheduled(id, email string, start time.Time) domain.Booking {
	b := domain.Booking{
		ID:            id,
		StartDateTime: start,
		DurationMins:  30,
		Status:        domain.StatusScheduled,
		MeetingLink:   "https://teams.microsoft.com/l/meetup-join/abc",
	}
	b.Candidate.FirstName = "Anna"
	b.Candidate.Email = email
	return b
}

func TestReminderDue(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		offset time.Duration
		want   int
	}{
		{23*time.Hour + 30*time.Minute, 24},
		{24 * time.Hour, 24},
		{23 * time.Hour, 0},  // нижняя граница окна исключена
		{25 * time.Hour, 0},
		{30 * time.Minute, 1},
		{time.Hour, 1},
		{90 * time.Minute, 0}, // между окнами
		{-time.Hour, 0},       // уже прошло
	}

	for _, c := range cases {
		assert.Equal(t, c.want, reminderDue(now.Add(c.offset), now), "offset %s", c.offset)
	}
}

func TestExecute_SendsBothWindows(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	records := &fakeRecords{bookings: []domain.Booking{
		scheduled("rec-1", "morgen@example.de", now.Add(23*time.Hour+30*time.Minute)),
		scheduled("rec-2", "gleich@example.de", now.Add(45*time.Minute)),
		scheduled("rec-3", "spaeter@example.de", now.Add(5*time.Hour)),
	}}
	mailer := &fakeMailer{}

	uc := newTestUseCase(t, records, mailer, now)
	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Sent24h)
	assert.Equal(t, 1, resp.Sent1h)
	assert.Empty(t, resp.Errors)

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, 24, mailer.sent[0].HoursUntil)
	assert.Equal(t, 1, mailer.sent[1].HoursUntil)
}

func TestExecute_CollectsPerItemErrors(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	noEmail := scheduled("rec-3", "", now.Add(30*time.Minute))

	records := &fakeRecords{bookings: []domain.Booking{
		scheduled("rec-1", "kaputt@example.de", now.Add(30*time.Minute)),
		scheduled("rec-2", "ok@example.de", now.Add(40*time.Minute)),
		noEmail,
	}}
	mailer := &fakeMailer{
		failFor: map[string]error{"kaputt@example.de": errors.New("bounce")},
	}

	uc := newTestUseCase(t, records, mailer, now)
	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	// Один сбой провайдера и одна запись без адреса, но проход дошел до конца
	assert.Equal(t, 1, resp.Sent1h)
	assert.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Errors[0], "rec-1")
}

func TestExecute_RecordStoreFailureIsFatal(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	records := &fakeRecords{err: errors.New("notion down")}

	uc := newTestUseCase(t, records, &fakeMailer{}, now)
	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrRecordStore)
}

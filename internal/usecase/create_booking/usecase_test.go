package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/msgraph"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/notion"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
)

type fakeCalendar struct {
	createErr error
	created   []msgraph.CreateEventRequest
}

func (f *fakeCalendar) CreateEvent(_ context.Context, req msgraph.CreateEventRequest) (*msgraph.EventResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &msgraph.EventResult{
		EventID:     "ev-1",
		MeetingLink: "https://teams.microsoft.com/l/meetup-join/abc",
	}, nil
}

type fakeRecords struct {
	createErr error
	attachErr error
	created   []notion.CreateRecordRequest
	attached  []string
}

func (f *fakeRecords) CreateRecord(_ context.Context, req notion.CreateRecordRequest) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, req)
	return "rec-1", nil
}

func (f *fakeRecords) AttachCV(_ context.Context, recordID, fileName, _ string, _ []byte) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attached = append(f.attached, fileName)
	return nil
}

type fakeMailer struct {
	confirmErr    error
	backupErr     error
	confirmations []resend.ConfirmationEmail
	backups       []resend.CVBackupEmail
}

func (f *fakeMailer) SendConfirmation(_ context.Context, email resend.ConfirmationEmail) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmations = append(f.confirmations, email)
	return nil
}

func (f *fakeMailer) SendCVBackup(_ context.Context, email resend.CVBackupEmail) error {
	if f.backupErr != nil {
		return f.backupErr
	}
	f.backups = append(f.backups, email)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConverter(t *testing.T) *civiltime.Converter {
	t.Helper()
	conv, err := civiltime.New("Europe/Berlin")
	require.NoError(t, err)
	return conv
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		Slot: domain.Slot{
			Date:            "2026-01-06",
			StartTime:       "10:00",
			DurationMinutes: 30,
		},
		Candidate: domain.CandidateProfile{
			FirstName: "Anna",
			LastName:  "Schmidt",
			Email:     "anna.schmidt@example.de",
			Position:  "SAP Beraterin",
		},
	}
}

func TestExecute_Success(t *testing.T) {
	calendar := &fakeCalendar{}
	records := &fakeRecords{}
	mailer := &fakeMailer{}
	uc := NewUseCase(calendar, records, mailer, testConverter(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, "rec-1", resp.BookingID)
	assert.Equal(t, "ev-1", resp.EventID)
	assert.NotEmpty(t, resp.MeetingLink)

	require.Len(t, calendar.created, 1)
	assert.Equal(t, "Anna Schmidt", calendar.created[0].AttendeeName)

	require.Len(t, records.created, 1)
	assert.Equal(t, "ev-1", records.created[0].EventID)

	require.Len(t, mailer.confirmations, 1)
	assert.Equal(t, "rec-1", mailer.confirmations[0].BookingID)
	assert.Equal(t, "Dienstag, 6. Januar 2026", mailer.confirmations[0].Date)
	assert.Equal(t, "10:00 Uhr", mailer.confirmations[0].Time)
}

func TestExecute_CalendarFailureCreatesNoRecord(t *testing.T) {
	calendar := &fakeCalendar{createErr: errors.New("graph down")}
	records := &fakeRecords{}
	mailer := &fakeMailer{}
	uc := NewUseCase(calendar, records, mailer, testConverter(t), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrCalendar)
	assert.Empty(t, records.created)
	assert.Empty(t, mailer.confirmations)
}

func TestExecute_PersistenceFailure(t *testing.T) {
	calendar := &fakeCalendar{}
	records := &fakeRecords{createErr: errors.New("notion down")}
	mailer := &fakeMailer{}
	uc := NewUseCase(calendar, records, mailer, testConverter(t), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrPersistence)
	// Событие уже создано и остается висящим
	assert.Len(t, calendar.created, 1)
	assert.Empty(t, mailer.confirmations)
}

func TestExecute_CVUploadFailureDoesNotFailBooking(t *testing.T) {
	calendar := &fakeCalendar{}
	records := &fakeRecords{attachErr: errors.New("upload failed")}
	mailer := &fakeMailer{}
	uc := NewUseCase(calendar, records, mailer, testConverter(t), nopLogger{})

	req := validRequest(t)
	req.CV = &CVFile{Name: "lebenslauf.pdf", ContentType: "application/pdf", Content: []byte("pdf")}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "rec-1", resp.BookingID)
	// Резервная копия оператору все равно уходит
	assert.Len(t, mailer.backups, 1)
}

func TestExecute_ConfirmationFailureDoesNotFailBooking(t *testing.T) {
	calendar := &fakeCalendar{}
	records := &fakeRecords{}
	mailer := &fakeMailer{confirmErr: errors.New("smtp down")}
	uc := NewUseCase(calendar, records, mailer, testConverter(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, "rec-1", resp.BookingID)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{}, &fakeRecords{}, &fakeMailer{}, testConverter(t), nopLogger{})

	cases := []func(*Request){
		func(r *Request) { r.Slot.Date = "06.01.2026" },
		func(r *Request) { r.Slot.StartTime = "25:00" },
		func(r *Request) { r.Slot.DurationMinutes = 5 },
		func(r *Request) { r.Candidate.FirstName = "" },
		func(r *Request) { r.Candidate.Email = "keine-email" },
		func(r *Request) { r.Candidate.Position = "" },
		func(r *Request) { r.CV = &CVFile{Name: "leer.pdf"} },
	}

	for i, mutate := range cases {
		req := validRequest(t)
		mutate(req)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "case %d", i)
	}
}

package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/msgraph"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/notion"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
)

// UseCase use case создания бронирования.
// Порядок шагов фиксированный: событие календаря, запись в базе,
// затем best-effort побочные эффекты (резюме, письма).
type UseCase struct {
	calendar CalendarClient
	records  RecordStore
	mailer   Mailer
	conv     *civiltime.Converter
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar CalendarClient,
	records RecordStore,
	mailer Mailer,
	conv *civiltime.Converter,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar: calendar,
		records:  records,
		mailer:   mailer,
		conv:     conv,
		logger:   logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: %s at %s %s, duration=%d",
		req.Candidate.Email, req.Slot.Date, req.Slot.StartTime, req.Slot.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.conv); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Событие календаря. Ошибка фатальна, запись не создается.
	event, err := uc.calendar.CreateEvent(ctx, msgraph.CreateEventRequest{
		Date:            req.Slot.Date,
		StartTime:       req.Slot.StartTime,
		DurationMinutes: req.Slot.DurationMinutes,
		AttendeeName:    req.Candidate.FullName(),
		AttendeeEmail:   req.Candidate.Email,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create event: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendar, err)
	}

	// 3. Запись в базе. Ошибка фатальна; компенсации нет, событие
	// остается висящим и требует ручной уборки.
	startInstant, err := uc.conv.At(req.Slot.Date, req.Slot.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	recordID, err := uc.records.CreateRecord(ctx, uc.buildRecord(req, startInstant, event))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to persist record, dangling event %s: %v",
			event.EventID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// 4. Резюме: вложение в запись и резервная копия оператору, best-effort
	if req.CV != nil {
		if err := uc.records.AttachCV(ctx, recordID, req.CV.Name, req.CV.ContentType, req.CV.Content); err != nil {
			uc.logger.Warn("CreateBooking: failed to attach cv to record %s: %v", recordID, err)
		}

		if err := uc.mailer.SendCVBackup(ctx, resend.CVBackupEmail{
			CandidateName:  req.Candidate.FullName(),
			CandidateEmail: req.Candidate.Email,
			Position:       req.Candidate.Position,
			FileName:       req.CV.Name,
			Content:        req.CV.Content,
		}); err != nil {
			uc.logger.Warn("CreateBooking: failed to send cv backup: %v", err)
		}
	}

	// 5. Подтверждение кандидату, best-effort
	if err := uc.mailer.SendConfirmation(ctx, resend.ConfirmationEmail{
		To:          req.Candidate.Email,
		Name:        req.Candidate.FirstName,
		Date:        domain.FormatGermanDate(startInstant.In(uc.conv.Location())),
		Time:        domain.FormatGermanTime(req.Slot.StartTime),
		MeetingLink: event.MeetingLink,
		BookingID:   recordID,
	}); err != nil {
		uc.logger.Warn("CreateBooking: failed to send confirmation to %s: %v",
			req.Candidate.Email, err)
	}

	uc.logger.Info("CreateBooking: booked %s, event %s", recordID, event.EventID)

	return &Response{
		BookingID:   recordID,
		EventID:     event.EventID,
		MeetingLink: event.MeetingLink,
		Date:        req.Slot.Date,
		Time:        req.Slot.StartTime,
	}, nil
}

func (uc *UseCase) buildRecord(req *Request, start time.Time, event *msgraph.EventResult) notion.CreateRecordRequest {
	record := notion.CreateRecordRequest{
		StartDateTime:   start,
		DurationMinutes: req.Slot.DurationMinutes,
		EventID:         event.EventID,
		MeetingLink:     event.MeetingLink,
	}
	record.Candidate.FullName = req.Candidate.FullName()
	record.Candidate.Email = req.Candidate.Email
	record.Candidate.Phone = req.Candidate.Phone
	record.Candidate.Position = req.Candidate.Position
	record.Candidate.AvailableFrom = req.Candidate.AvailableFrom
	record.Candidate.Regions = req.Candidate.Regions
	record.Candidate.Salary = req.Candidate.Salary
	record.Candidate.EmploymentTypes = req.Candidate.EmploymentTypes
	record.Candidate.WorkTime = req.Candidate.WorkTime
	record.Candidate.WorkLocation = req.Candidate.WorkLocation
	record.Candidate.ContractTypes = req.Candidate.ContractTypes
	record.Candidate.LinkedIn = req.Candidate.LinkedIn
	return record
}

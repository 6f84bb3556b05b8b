package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/notion"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
)

// Service сервис управления существующими бронированиями.
// Источником правды служит запись в базе; календарь и письма обновляются
// best-effort, их сбой не откатывает смену статуса.
type Service struct {
	records  RecordStore
	calendar CalendarClient
	mailer   Mailer
	conv     *civiltime.Converter
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	records RecordStore,
	calendar CalendarClient,
	mailer Mailer,
	conv *civiltime.Converter,
	logger Logger,
) *Service {
	return &Service{
		records:  records,
		calendar: calendar,
		mailer:   mailer,
		conv:     conv,
		logger:   logger,
	}
}

// Cancel отменяет бронирование: статус "Abgesagt", удаление события
// календаря и письмо кандидату.
func (s *Service) Cancel(ctx context.Context, bookingID string) error {
	s.logger.Info("Cancel: booking %s", bookingID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking %s has status %q", bookingID, booking.Status)
		return ErrBookingNotActive
	}

	// 1. Статус в базе. Ошибка фатальна.
	if err := s.records.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to update status of %s: %v", bookingID, err)
		return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	// 2. Событие календаря, best-effort
	if booking.EventID != "" {
		if err := s.calendar.DeleteEvent(ctx, booking.EventID); err != nil {
			s.logger.Warn("Cancel: failed to delete event %s: %v", booking.EventID, err)
		}
	}

	// 3. Письмо кандидату, best-effort
	if booking.Candidate.Email != "" {
		local := booking.StartDateTime.In(s.conv.Location())
		if err := s.mailer.SendCancellation(ctx, resend.CancellationEmail{
			To:   booking.Candidate.Email,
			Name: booking.Candidate.FirstName,
			Date: domain.FormatGermanDate(local),
			Time: domain.FormatGermanTime(s.conv.TimeOf(booking.StartDateTime)),
		}); err != nil {
			s.logger.Warn("Cancel: failed to send cancellation to %s: %v",
				booking.Candidate.Email, err)
		}
	}

	s.logger.Info("Cancel: booking %s cancelled", bookingID)
	return nil
}

// Reschedule переносит бронирование на новый слот: дата встречи в базе,
// событие календаря и повторное подтверждение кандидату.
func (s *Service) Reschedule(ctx context.Context, bookingID string, slot domain.Slot) (*domain.Booking, error) {
	s.logger.Info("Reschedule: booking %s to %s %s", bookingID, slot.Date, slot.StartTime)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeRescheduled() {
		s.logger.Warn("Reschedule: booking %s has status %q", bookingID, booking.Status)
		return nil, ErrBookingNotActive
	}

	if slot.DurationMinutes == 0 {
		slot.DurationMinutes = booking.DurationMins
	}

	start, err := s.conv.At(slot.Date, slot.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid slot: %v", ErrInvalidInput, err)
	}

	// 1. Дата встречи в базе. Ошибка фатальна.
	if err := s.records.UpdateMeeting(ctx, bookingID, start, slot.DurationMinutes); err != nil {
		s.logger.Error("Reschedule: failed to update record %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to update record: %v", ErrInternal, err)
	}

	// 2. Событие календаря, best-effort
	if booking.EventID != "" {
		if err := s.calendar.UpdateEventTime(ctx, booking.EventID, slot.Date, slot.StartTime, slot.DurationMinutes); err != nil {
			s.logger.Warn("Reschedule: failed to move event %s: %v", booking.EventID, err)
		}
	}

	// 3. Подтверждение нового времени, best-effort
	if booking.Candidate.Email != "" {
		local := start.In(s.conv.Location())
		if err := s.mailer.SendConfirmation(ctx, resend.ConfirmationEmail{
			To:          booking.Candidate.Email,
			Name:        booking.Candidate.FirstName,
			Date:        domain.FormatGermanDate(local),
			Time:        domain.FormatGermanTime(slot.StartTime),
			MeetingLink: booking.MeetingLink,
			BookingID:   bookingID,
		}); err != nil {
			s.logger.Warn("Reschedule: failed to send confirmation to %s: %v",
				booking.Candidate.Email, err)
		}
	}

	booking.StartDateTime = start
	booking.DurationMins = slot.DurationMinutes

	s.logger.Info("Reschedule: booking %s moved to %s %s", bookingID, slot.Date, slot.StartTime)
	return booking, nil
}

func (s *Service) getBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.records.GetRecord(ctx, bookingID)
	if err != nil {
		if errors.Is(err, notion.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBooking: failed to get record %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get record: %v", ErrInternal, err)
	}

	return booking, nil
}

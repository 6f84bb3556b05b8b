package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
)

// UseCase use case рассылки напоминаний. Запускается кроном раз в час:
// в 24-часовое окно (now+23h, now+24h] и в 1-часовое окно (now, now+1h]
// каждое бронирование попадает ровно один раз.
type UseCase struct {
	records      RecordStore
	mailer       Mailer
	conv         *civiltime.Converter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	records RecordStore,
	mailer Mailer,
	conv *civiltime.Converter,
	logger Logger,
) *UseCase {
	return &UseCase{
		records:      records,
		mailer:       mailer,
		conv:         conv,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проход по напоминаниям.
// Ошибка одного письма не прерывает проход, а копится в Response.Errors.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	bookings, err := uc.records.QueryScheduled(ctx)
	if err != nil {
		uc.logger.Error("SendReminders: failed to query bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRecordStore, err)
	}

	uc.logger.Info("SendReminders: checking %d scheduled bookings", len(bookings))

	resp := &Response{Errors: []string{}}

	for _, booking := range bookings {
		hoursUntil := reminderDue(booking.StartDateTime, now)
		if hoursUntil == 0 {
			continue
		}

		if err := uc.sendReminder(ctx, &booking, hoursUntil); err != nil {
			uc.logger.Warn("SendReminders: booking %s: %v", booking.ID, err)
			resp.Errors = append(resp.Errors, fmt.Sprintf("booking %s: %v", booking.ID, err))
			continue
		}

		if hoursUntil == 24 {
			resp.Sent24h++
		} else {
			resp.Sent1h++
		}
	}

	uc.logger.Info("SendReminders: sent %d x 24h, %d x 1h, %d errors",
		resp.Sent24h, resp.Sent1h, len(resp.Errors))
	return resp, nil
}

// reminderDue возвращает 24, 1 или 0: какое напоминание положено бронированию
// с началом start при текущем времени now.
func reminderDue(start, now time.Time) int {
	until := start.Sub(now)

	switch {
	case until > 23*time.Hour && until <= 24*time.Hour:
		return 24
	case until > 0 && until <= time.Hour:
		return 1
	default:
		return 0
	}
}

func (uc *UseCase) sendReminder(ctx context.Context, booking *domain.Booking, hoursUntil int) error {
	if booking.Candidate.Email == "" {
		return fmt.Errorf("record has no email")
	}

	local := booking.StartDateTime.In(uc.conv.Location())

	return uc.mailer.SendReminder(ctx, resend.ReminderEmail{
		To:          booking.Candidate.Email,
		Name:        booking.Candidate.FirstName,
		Date:        domain.FormatGermanDate(local),
		Time:        domain.FormatGermanTime(uc.conv.TimeOf(booking.StartDateTime)),
		MeetingLink: booking.MeetingLink,
		HoursUntil:  hoursUntil,
	})
}

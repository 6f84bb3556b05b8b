package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	calendar     CalendarClient
	policies     PolicyProvider
	conv         *civiltime.Converter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar CalendarClient,
	policies PolicyProvider,
	conv *civiltime.Converter,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		policies:     policies,
		conv:         conv,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: range=%s..%s, duration=%d",
		req.StartDate, req.EndDate, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	rangeStart, err := uc.conv.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate: %v", ErrInvalidInput, err)
	}
	rangeEnd, err := uc.conv.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate: %v", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()

	// 2. Действующая конфигурация (provider сам подставляет дефолты)
	policy, err := uc.policies.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = policy.SlotDurationMinutes
	}

	// 3. Занятость календаря на весь диапазон
	busy, err := uc.listBusy(ctx, rangeStart, rangeEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list events: %v", err)
		return nil, ErrCalendarUnavailable
	}

	// 4. Применяем правила расписания и занятость
	slots := computeAvailability(policy, rangeStart, rangeEnd, now, busy, uc.conv, duration)

	uc.logger.Info("GetAvailableSlots: %d days with free slots", len(slots))
	return &Response{Slots: slots}, nil
}

func (uc *UseCase) listBusy(ctx context.Context, rangeStart, rangeEnd time.Time) ([]domain.BusyInterval, error) {
	from := rangeStart
	to := rangeEnd.AddDate(0, 0, 1) // конец последнего дня

	events, err := uc.calendar.ListEvents(ctx, from, to)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.BusyInterval, 0, len(events))
	for _, ev := range events {
		busy = append(busy, domain.BusyInterval{Start: ev.Start, End: ev.End})
	}

	return busy, nil
}

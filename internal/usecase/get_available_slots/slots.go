package get_available_slots

import (
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// generateDaySlots генерирует все возможные времена начала слотов на рабочий день.
// Слоты идут от начала рабочего дня с шагом slotDuration + buffer; слот попадает
// в результат, только если встреча длительностью durationMinutes целиком
// помещается в рабочий день и не пересекает ни одно окно перерыва.
// Результат зависит только от конфигурации и одинаков для всех дней.
func generateDaySlots(policy *domain.SchedulingPolicy, durationMinutes int) []types.TimeString {
	dayStart := policy.StartHour * 60
	dayEnd := policy.EndHour * 60
	step := policy.SlotDurationMinutes + policy.BufferMinutes

	if step <= 0 || durationMinutes <= 0 || dayStart >= dayEnd {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0)
	for start := dayStart; start+durationMinutes <= dayEnd; start += step {
		if overlapsBreak(start, start+durationMinutes, policy.Breaks) {
			continue
		}
		tod, err := types.FromMinutes(start)
		if err != nil {
			break
		}
		slots = append(slots, tod)
	}

	return slots
}

// overlapsBreak проверяет пересечение полуоткрытого интервала [start, end)
// с окнами перерывов. Слот, заканчивающийся ровно в начале перерыва, проходит.
func overlapsBreak(start, end int, breaks []domain.BreakWindow) bool {
	for _, b := range breaks {
		if start < b.EndMinutes() && end > b.StartMinutes() {
			return true
		}
	}
	return false
}

// computeAvailability собирает доступность по дням диапазона [rangeStart, rangeEnd]
// (границы - полночи в бизнес-таймзоне, включительно). Применяет рабочие дни,
// блокировки, горизонт бронирования, минимальный срок уведомления и занятость
// календаря. Дни без слотов в результат не попадают.
func computeAvailability(
	policy *domain.SchedulingPolicy,
	rangeStart, rangeEnd time.Time,
	now time.Time,
	busy []domain.BusyInterval,
	conv *civiltime.Converter,
	durationMinutes int,
) []domain.TimeSlotDay {
	daySlots := generateDaySlots(policy, durationMinutes)

	// Раньше этого момента бронировать нельзя
	earliestStart := now.Add(time.Duration(policy.MinimumNoticeHours) * time.Hour)

	// Последний бронируемый день горизонта
	horizon := conv.StartOfDay(now).AddDate(0, 0, policy.AdvanceBookingDays)

	result := make([]domain.TimeSlotDay, 0)

	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		if day.After(horizon) {
			break
		}

		date := conv.DateOf(day)
		if !policy.IsWorkingDay(int(conv.Weekday(day))) || policy.IsBlockedDate(date) {
			continue
		}

		times := make([]types.TimeString, 0, len(daySlots))
		for _, tod := range daySlots {
			slotStart, err := conv.At(date, tod)
			if err != nil {
				continue
			}
			if slotStart.Before(earliestStart) {
				continue
			}

			slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)
			if overlapsBusy(slotStart, slotEnd, busy) {
				continue
			}

			times = append(times, tod)
		}

		if len(times) > 0 {
			result = append(result, domain.TimeSlotDay{Date: date, Times: times})
		}
	}

	return result
}

func overlapsBusy(start, end time.Time, busy []domain.BusyInterval) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

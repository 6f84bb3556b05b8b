package policy

import (
	"fmt"
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
)

// validatePolicy проверяет согласованность конфигурации расписания
func validatePolicy(p *domain.SchedulingPolicy) error {
	if p.StartHour < 0 || p.StartHour > 23 || p.EndHour < 0 || p.EndHour > 24 {
		return fmt.Errorf("%w: hours must be within a day", ErrInvalidConfig)
	}
	if p.StartHour >= p.EndHour {
		return fmt.Errorf("%w: startHour must be before endHour", ErrInvalidConfig)
	}

	if p.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		p.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDuration must be between %d and %d minutes",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if p.BufferMinutes < 0 {
		return fmt.Errorf("%w: bufferMinutes must not be negative", ErrInvalidConfig)
	}

	if p.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		p.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidConfig, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if p.MinimumNoticeHours < 0 || p.MinimumNoticeHours > domain.MaxMinimumNoticeHours {
		return fmt.Errorf("%w: minimumNoticeHours must be between 0 and %d",
			ErrInvalidConfig, domain.MaxMinimumNoticeHours)
	}

	if len(p.WorkingDays) == 0 {
		return fmt.Errorf("%w: at least one working day is required", ErrInvalidConfig)
	}
	for _, d := range p.WorkingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: working day %d is out of range 0..6", ErrInvalidConfig, d)
		}
	}

	for _, b := range p.Breaks {
		if b.StartHour < 0 || b.StartHour > 23 || b.EndHour < 0 || b.EndHour > 24 ||
			b.StartMinute < 0 || b.StartMinute > 59 || b.EndMinute < 0 || b.EndMinute > 59 {
			return fmt.Errorf("%w: break window fields are out of range", ErrInvalidConfig)
		}
		if b.StartMinutes() >= b.EndMinutes() {
			return fmt.Errorf("%w: break window must start before it ends", ErrInvalidConfig)
		}
	}

	for _, d := range p.BlockedDates {
		if !validISODate(d) {
			return fmt.Errorf("%w: blocked date %q is not a valid date", ErrInvalidConfig, d)
		}
	}

	for _, period := range p.BlockedPeriods {
		if !validISODate(period.StartDate) || !validISODate(period.EndDate) {
			return fmt.Errorf("%w: blocked period %q..%q has invalid dates",
				ErrInvalidConfig, period.StartDate, period.EndDate)
		}
		if period.EndDate < period.StartDate {
			return fmt.Errorf("%w: blocked period %q..%q ends before it starts",
				ErrInvalidConfig, period.StartDate, period.EndDate)
		}
	}

	return nil
}

func validISODate(s string) bool {
	_, err := time.Parse(civiltime.DateFormat, s)
	return err == nil
}

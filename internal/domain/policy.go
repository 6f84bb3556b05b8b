package domain

// BreakWindow is a recurring daily exclusion window, e.g. a lunch break.
// Windows may overlap each other; exclusions are applied independently.
type BreakWindow struct {
	StartHour   int `json:"startHour"`
	StartMinute int `json:"startMinute"`
	EndHour     int `json:"endHour"`
	EndMinute   int `json:"endMinute"`
}

// StartMinutes returns the window start as minutes since midnight
func (b BreakWindow) StartMinutes() int {
	return b.StartHour*60 + b.StartMinute
}

// EndMinutes returns the window end as minutes since midnight
func (b BreakWindow) EndMinutes() int {
	return b.EndHour*60 + b.EndMinute
}

// BlockedPeriod is an inclusive civil date range excluded from availability
type BlockedPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Label     string `json:"label,omitempty"`
}

// SchedulingPolicy is the full scheduling configuration.
// A singleton resource: created with defaults on first read, replaced
// wholesale by the admin, never deleted.
type SchedulingPolicy struct {
	StartHour           int             `json:"startHour"`
	EndHour             int             `json:"endHour"`
	SlotDurationMinutes int             `json:"slotDuration"`
	BufferMinutes       int             `json:"bufferMinutes"`
	WorkingDays         []int           `json:"workingDays"` // 0=Sunday .. 6=Saturday
	Breaks              []BreakWindow   `json:"breaks"`
	BlockedDates        []string        `json:"blockedDates"`
	BlockedPeriods      []BlockedPeriod `json:"blockedPeriods,omitempty"`
	AdvanceBookingDays  int             `json:"advanceBookingDays"`
	MinimumNoticeHours  int             `json:"minimumNoticeHours"`
}

// DefaultSchedulingPolicy returns the policy used until the admin saves one:
// Mon-Fri 09:00-17:00, 30-minute slots, lunch break 12:00-13:00,
// bookable 30 days ahead with 24 hours notice.
func DefaultSchedulingPolicy() *SchedulingPolicy {
	return &SchedulingPolicy{
		StartHour:           9,
		EndHour:             17,
		SlotDurationMinutes: 30,
		BufferMinutes:       0,
		WorkingDays:         []int{1, 2, 3, 4, 5},
		Breaks: []BreakWindow{
			{StartHour: 12, StartMinute: 0, EndHour: 13, EndMinute: 0},
		},
		BlockedDates:       []string{},
		BlockedPeriods:     []BlockedPeriod{},
		AdvanceBookingDays: 30,
		MinimumNoticeHours: 24,
	}
}

// IsWorkingDay reports whether the given weekday number (0=Sunday) is enabled
func (p *SchedulingPolicy) IsWorkingDay(weekday int) bool {
	for _, d := range p.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// IsBlockedDate reports whether the civil date (YYYY-MM-DD) is excluded,
// either as a single blocked date or inside a blocked period.
// ISO dates compare lexicographically, so no parsing is needed here.
func (p *SchedulingPolicy) IsBlockedDate(date string) bool {
	for _, d := range p.BlockedDates {
		if d == date {
			return true
		}
	}
	for _, period := range p.BlockedPeriods {
		if period.StartDate <= date && date <= period.EndDate {
			return true
		}
	}
	return false
}

package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Policy validation bounds, enforced at configuration-save time.
// The availability engine itself never rejects a stored policy.
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 120
	MinAdvanceBookingDays  = 1
	MaxAdvanceBookingDays  = 365
	MaxMinimumNoticeHours  = 24 * 14 // 2 weeks
)

// Rate limiting of the public booking endpoint
const (
	RateLimitMaxPerWindow = 5
	RateLimitWindowHours  = 1
)

package send_reminders

import "errors"

var (
	// ErrRecordStore возвращается, когда список бронирований получить не удалось.
	// Без списка проход невозможен; ошибки отдельных писем в Response.Errors.
	ErrRecordStore = errors.New("failed to query scheduled bookings")
)

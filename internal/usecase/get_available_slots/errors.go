package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCalendarUnavailable возвращается, когда календарь не ответил.
	// Занятость неизвестна, отдавать слоты вслепую нельзя.
	ErrCalendarUnavailable = errors.New("calendar is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

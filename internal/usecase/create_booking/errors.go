package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCalendar возвращается, когда событие календаря создать не удалось.
	// Запись в базе при этом не создается.
	ErrCalendar = errors.New("failed to create calendar event")

	// ErrPersistence возвращается, когда запись в базе создать не удалось.
	// Событие календаря к этому моменту уже создано и остается висящим.
	ErrPersistence = errors.New("failed to persist booking record")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

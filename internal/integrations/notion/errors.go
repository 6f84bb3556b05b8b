package notion

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись бронирования не найдена
	ErrRecordNotFound = errors.New("notion client: record not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notion client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Notion API
	ErrInvalidResponse = errors.New("notion client: invalid response")
)

package msgraph

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие календаря не найдено
	ErrEventNotFound = errors.New("msgraph client: event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("msgraph client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Graph API
	ErrInvalidResponse = errors.New("msgraph client: invalid response")
)

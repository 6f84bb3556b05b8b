package policy

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации расписания
	ErrInvalidConfig = errors.New("invalid scheduling config")

	// ErrStorageUnavailable возвращается, когда сохранить конфигурацию
	// не удалось из-за недоступности хранилища
	ErrStorageUnavailable = errors.New("config storage is unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package policy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда конфигурация еще не сохранялась
	ErrPolicyNotFound = errors.New("policy storage: policy not found")

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = errors.New("policy storage: unavailable")

	// ErrInternal возвращается при ошибках сериализации
	ErrInternal = errors.New("policy storage: internal error")
)

package kv

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("kv store: key not found")

	// ErrUnavailable возвращается, когда хранилище недоступно или не настроено
	ErrUnavailable = errors.New("kv store: unavailable")
)

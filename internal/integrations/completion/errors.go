package completion

import "errors"

var (
	// ErrNotConfigured возвращается, если не задан API ключ
	ErrNotConfigured = errors.New("completion client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("completion client: internal error")

	// ErrUpstream возвращается, если сервис ответил ошибкой
	ErrUpstream = errors.New("completion client: upstream error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("completion client: invalid response")
)

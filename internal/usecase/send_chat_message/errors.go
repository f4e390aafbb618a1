package send_chat_message

import "errors"

var (
	// ErrServiceUnavailable возвращается, если не задан ключ сервиса генерации
	ErrServiceUnavailable = errors.New("send_chat_message: ai service not configured")

	// ErrUpstream возвращается, если сервис генерации не ответил
	ErrUpstream = errors.New("send_chat_message: ai service error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_chat_message: internal error")
)

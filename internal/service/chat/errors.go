package chat

import "errors"

var (
	// ErrInvalidLimit возвращается при limit < 1
	ErrInvalidLimit = errors.New("history limit must be positive")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

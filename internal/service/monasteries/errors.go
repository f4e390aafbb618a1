package monasteries

import "errors"

var (
	// ErrMonasteryNotFound возвращается, когда монастырь не найден
	ErrMonasteryNotFound = errors.New("monastery not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

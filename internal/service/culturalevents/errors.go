package culturalevents

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("cultural event not found")

	// ErrInvalidMonth возвращается при некорректном годе или месяце календаря
	ErrInvalidMonth = errors.New("invalid calendar month")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

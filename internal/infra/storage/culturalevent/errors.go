package culturalevent

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("culturalevent.repository: event not found")

	// ErrRepository оборачивает прочие ошибки хранилища
	ErrRepository = errors.New("culturalevent.repository: storage error")
)

package monastery

import "errors"

var (
	// ErrMonasteryNotFound возвращается, когда монастырь не найден
	ErrMonasteryNotFound = errors.New("monastery.repository: monastery not found")

	// ErrRepository оборачивает прочие ошибки хранилища
	ErrRepository = errors.New("monastery.repository: storage error")
)

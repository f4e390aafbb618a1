package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrRepository оборачивает прочие ошибки хранилища
	ErrRepository = errors.New("booking.repository: storage error")
)

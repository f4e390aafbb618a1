package domain

import "time"

// StatusCheck запись проверки доступности сервиса
type StatusCheck struct {
	ID         string
	ClientName string
	Timestamp  time.Time
}

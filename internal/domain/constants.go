package domain

// Форматы дат и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Значения по умолчанию
const (
	DefaultChatHistoryLimit = 20
	MaxChatHistoryLimit     = 100
	MaxStatusChecks         = 1000
)

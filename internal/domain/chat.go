package domain

import "time"

// ChatMessage один обмен репликами с гидом (вопрос + ответ)
type ChatMessage struct {
	ID               string
	SessionID        string
	UserMessage      string
	AIResponse       string
	MonasteryContext *string // ID монастыря, если был передан
	Timestamp        time.Time
}

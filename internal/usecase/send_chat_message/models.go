package send_chat_message

// Request сообщение пользователя
type Request struct {
	Message     string
	SessionID   string
	MonasteryID *string // опционально, для контекста
}

// Response ответ гида
type Response struct {
	Response         string `json:"response"`
	SessionID        string `json:"session_id"`
	MonasteryContext bool   `json:"monastery_context"`
}

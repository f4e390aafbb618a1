package initialize_cultural_events

// Request параметры инициализации
type Request struct {
	Force bool // удалить существующие события и засеять заново
}

// Response результат инициализации
type Response struct {
	Message     string `json:"message"`
	Count       int    `json:"count"`
	Linked      int    `json:"linked"` // событий, привязанных к монастырю по названию
	Initialized bool   `json:"initialized"`
}

package initialize_monasteries

// Request параметры инициализации
type Request struct {
	Force bool // удалить существующие записи и засеять заново
}

// Response результат инициализации
type Response struct {
	Message     string `json:"message"`
	Count       int    `json:"count"`       // вставлено или уже было (если пропущено)
	Initialized bool   `json:"initialized"` // false, если коллекция уже заполнена
}

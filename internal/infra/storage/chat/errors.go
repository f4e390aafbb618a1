package chat

import "errors"

// ErrRepository оборачивает ошибки хранилища
var ErrRepository = errors.New("chat.repository: storage error")

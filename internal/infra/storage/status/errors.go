package status

import "errors"

// ErrRepository оборачивает ошибки хранилища
var ErrRepository = errors.New("status.repository: storage error")

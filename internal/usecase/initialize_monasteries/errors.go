package initialize_monasteries

import "errors"

// ErrInternal возвращается при внутренних ошибках
var ErrInternal = errors.New("initialize_monasteries: internal error")

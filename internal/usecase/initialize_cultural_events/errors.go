package initialize_cultural_events

import "errors"

// ErrInternal возвращается при внутренних ошибках
var ErrInternal = errors.New("initialize_cultural_events: internal error")

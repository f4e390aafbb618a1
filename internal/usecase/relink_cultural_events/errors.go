package relink_cultural_events

import "errors"

// ErrInternal возвращается при внутренних ошибках
var ErrInternal = errors.New("relink_cultural_events: internal error")

package collection

import "errors"

var (
	// ErrNotFound возвращается, когда документ не найден
	ErrNotFound = errors.New("collection: document not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("collection: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("collection: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("collection: failed to scan row")

	// ErrEncode возвращается, если документ не удалось разложить по колонкам
	ErrEncode = errors.New("collection: failed to encode document")

	// ErrUnknownField возвращается при обращении к полю, которого нет в схеме
	ErrUnknownField = errors.New("collection: unknown field")
)

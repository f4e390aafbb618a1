package culturalevent

import "github.com/m04kA/SMC-HeritageService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

package statuslog

import "github.com/m04kA/SMC-CompanionAdmin/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

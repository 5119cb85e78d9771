package config

import "github.com/m04kA/SMC-BarberShop/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения SQL запросов (вне или внутри транзакции)
type DBExecutor = dbmetrics.DBExecutor

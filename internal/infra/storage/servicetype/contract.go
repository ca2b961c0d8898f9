package servicetype

import "github.com/m04kA/SMC-GarageService/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor

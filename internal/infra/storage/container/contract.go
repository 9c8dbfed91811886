package container

import (
	"github.com/m04kA/SMC-ContainerSlots/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

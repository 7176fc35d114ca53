package availability

import (
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

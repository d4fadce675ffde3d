package event

import "github.com/m04kA/SMC-EventsService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// EventsFilter фильтр для получения списка мероприятий
type EventsFilter struct {
	CategoryID   *int64 // Фильтр по категории (опционально)
	UpcomingOnly bool   // Только предстоящие мероприятия
}

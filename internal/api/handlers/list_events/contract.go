package list_events

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/service/events/models"
)

// EventService интерфейс сервиса мероприятий
type EventService interface {
	List(ctx context.Context, req *models.ListEventsRequest) (*models.EventListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

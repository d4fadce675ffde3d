package get_event

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/service/events/models"
)

// EventService интерфейс сервиса мероприятий
type EventService interface {
	GetByID(ctx context.Context, id int64) (*models.EventResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

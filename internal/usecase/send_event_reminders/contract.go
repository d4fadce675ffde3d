package send_event_reminders

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	notifmodels "github.com/m04kA/SMC-EventsService/internal/service/notifications/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByEventID(ctx context.Context, eventID int64) ([]*domain.Booking, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

// Notifier интерфейс диспетчера SMS-уведомлений
type Notifier interface {
	SendEventReminder(ctx context.Context, customer *domain.Customer, eventName, eventTime string) *notifmodels.SendResult
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

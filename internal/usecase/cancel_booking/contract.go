package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	notifmodels "github.com/m04kA/SMC-EventsService/internal/service/notifications/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
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
	SendBookingCancellation(ctx context.Context, customer *domain.Customer, eventName, eventDate string) *notifmodels.SendResult
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package events

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
)

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, filter eventRepo.EventsFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id int64, event *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository интерфейс репозитория категорий мероприятий
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.EventCategory, error)
	List(ctx context.Context) ([]*domain.EventCategory, error)
}

// BookingRepository интерфейс репозитория бронирований.
// Нужен для вычисления остатка мест: остаток не хранится, а
// пересчитывается по текущим бронированиям при каждом чтении.
type BookingRepository interface {
	GetByEventID(ctx context.Context, eventID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

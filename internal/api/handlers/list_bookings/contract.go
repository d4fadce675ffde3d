package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	"github.com/m04kA/SMC-EventsService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	List(ctx context.Context, filter domain.BookingsFilter) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

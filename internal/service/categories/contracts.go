package categories

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// CategoryRepository интерфейс репозитория категорий мероприятий
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.EventCategory) (*domain.EventCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.EventCategory, error)
	List(ctx context.Context) ([]*domain.EventCategory, error)
	Update(ctx context.Context, id int64, category *domain.EventCategory) (*domain.EventCategory, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_category

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/service/categories/models"
)

// CategoryService интерфейс сервиса категорий мероприятий
type CategoryService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.CategoryResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

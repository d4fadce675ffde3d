package sms_health

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/service/notifications/models"
)

// NotificationService интерфейс диспетчера уведомлений
type NotificationService interface {
	CheckHealth(ctx context.Context) *models.HealthResult
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

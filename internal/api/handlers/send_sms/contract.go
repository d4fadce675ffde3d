package send_sms

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/integrations/twilio"
)

// SMSClient интерфейс клиента SMS-шлюза.
// Ручка шлюза пробрасывает {to, body} напрямую, без шаблонов:
// учетные данные Twilio живут только на сервере.
type SMSClient interface {
	SendMessage(ctx context.Context, to, body string) (*twilio.SendResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

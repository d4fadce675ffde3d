package twilio

// Logger интерфейс логгера для клиента Twilio
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

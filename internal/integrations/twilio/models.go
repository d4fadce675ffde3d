package twilio

// SendResult результат успешной отправки сообщения
type SendResult struct {
	SID string
}

// HealthResult результат проверки доступности Twilio API
type HealthResult struct {
	Count int // Число сообщений на первой странице журнала Twilio
}

// messageResponse ответ Twilio API на создание сообщения
type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// messagesPageResponse ответ Twilio API на запрос журнала сообщений
type messagesPageResponse struct {
	Messages []messageResponse `json:"messages"`
}

// apiError ответ Twilio API при ошибке
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

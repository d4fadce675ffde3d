package models

// SendResult результат попытки отправки SMS.
// Отправка никогда не возвращает ошибку наружу: любой сбой
// сворачивается в Success=false с текстом в Message.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResult результат проверки подключения к SMS-провайдеру
type HealthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

package twilio

import "errors"

var (
	// ErrNotConfigured возвращается, когда учетные данные Twilio не заданы
	ErrNotConfigured = errors.New("twilio client: credentials are not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("twilio client: internal error")

	// ErrAPIError возвращается, когда Twilio API отклонил запрос
	ErrAPIError = errors.New("twilio client: api error")

	// ErrInvalidResponse возвращается при некорректном ответе от Twilio API
	ErrInvalidResponse = errors.New("twilio client: invalid response")
)

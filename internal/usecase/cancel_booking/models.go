package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64
}

// Response модель ответа на отмену бронирования
type Response struct {
	BookingID int64

	// Результат отправки уведомления об отмене. Если клиента или
	// мероприятие не удалось разрезолвить, уведомление пропускается.
	NotificationSent    bool
	NotificationMessage string
}

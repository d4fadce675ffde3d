package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64   // ID клиента
	EventID    int64   // ID мероприятия
	Attendees  int     // Число мест; 0 значит бронирование только для напоминаний
	Notes      *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	CustomerID int64
	EventID    int64
	Attendees  int
	Notes      *string
	CreatedAt  time.Time

	// Результат отправки подтверждения. Неудача уведомления не
	// отменяет бронирование, поэтому результат отдается вместе с ним.
	NotificationSent    bool
	NotificationMessage string
}

package update_booking

import "time"

// Request модель запроса на изменение бронирования.
// Менять можно число мест и заметки; клиент и мероприятие
// бронирования фиксированы с момента создания.
type Request struct {
	BookingID int64
	Attendees int
	Notes     *string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID         int64
	CustomerID int64
	EventID    int64
	Attendees  int
	Notes      *string
	CreatedAt  time.Time
}

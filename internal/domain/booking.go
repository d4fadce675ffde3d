package domain

import "time"

// Booking represents a customer's booking for an event.
// A booking with zero attendees is a reminder-only booking: it is kept
// for SMS purposes and never consumes event capacity.
type Booking struct {
	ID         int64
	CustomerID int64
	EventID    int64
	Attendees  int
	Notes      *string
	CreatedAt  time.Time

	// Optional relations, populated only when explicitly resolved.
	Customer *Customer
	Event    *Event
}

// IsReminderOnly returns true if the booking consumes no seats
func (b *Booking) IsReminderOnly() bool {
	return b.Attendees == 0
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	EventID    *int64 // Фильтр по мероприятию (опционально)
	CustomerID *int64 // Фильтр по клиенту (опционально)
}

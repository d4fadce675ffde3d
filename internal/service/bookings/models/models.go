package models

import (
	"time"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// BookingResponse ответ с данными бронирования.
// CustomerName и EventName заполняются только если ссылка
// резолвится; удаленный клиент или мероприятие дают nil.
type BookingResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customerId"`
	CustomerName *string   `json:"customerName,omitempty"`
	EventID      int64     `json:"eventId"`
	EventName    *string   `json:"eventName,omitempty"`
	Attendees    int       `json:"attendees"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, customerName, eventName *string) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: customerName,
		EventID:      b.EventID,
		EventName:    eventName,
		Attendees:    b.Attendees,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
	}
}

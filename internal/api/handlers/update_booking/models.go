package update_booking

import (
	"time"

	updateBooking "github.com/m04kA/SMC-EventsService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP запрос на изменение бронирования
type UpdateBookingRequest struct {
	Attendees int     `json:"attendees"`
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) *updateBooking.Request {
	return &updateBooking.Request{
		BookingID: bookingID,
		Attendees: r.Attendees,
		Notes:     r.Notes,
	}
}

// UpdateBookingResponse HTTP ответ с обновленным бронированием
type UpdateBookingResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	EventID    int64     `json:"eventId"`
	Attendees  int       `json:"attendees"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *updateBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		EventID:    resp.EventID,
		Attendees:  resp.Attendees,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt,
	}
}

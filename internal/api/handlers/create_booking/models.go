package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-EventsService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP запрос на создание бронирования
type CreateBookingRequest struct {
	CustomerID int64   `json:"customerId"`
	EventID    int64   `json:"eventId"`
	Attendees  int     `json:"attendees"`
	Notes      *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerID: r.CustomerID,
		EventID:    r.EventID,
		Attendees:  r.Attendees,
		Notes:      r.Notes,
	}
}

// NotificationResult итог отправки SMS-подтверждения
type NotificationResult struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// CreateBookingResponse HTTP ответ с созданным бронированием
type CreateBookingResponse struct {
	ID           int64              `json:"id"`
	CustomerID   int64              `json:"customerId"`
	EventID      int64              `json:"eventId"`
	Attendees    int                `json:"attendees"`
	Notes        *string            `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	Notification NotificationResult `json:"notification"`
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		EventID:    resp.EventID,
		Attendees:  resp.Attendees,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt,
		Notification: NotificationResult{
			Sent:    resp.NotificationSent,
			Message: resp.NotificationMessage,
		},
	}
}

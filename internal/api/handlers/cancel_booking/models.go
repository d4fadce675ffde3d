package cancel_booking

import (
	cancelBooking "github.com/m04kA/SMC-EventsService/internal/usecase/cancel_booking"
)

// NotificationResult итог отправки SMS об отмене
type NotificationResult struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message,omitempty"`
}

// CancelBookingResponse HTTP ответ на отмену бронирования
type CancelBookingResponse struct {
	BookingID    int64              `json:"bookingId"`
	Cancelled    bool               `json:"cancelled"`
	Notification NotificationResult `json:"notification"`
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID: resp.BookingID,
		Cancelled: true,
		Notification: NotificationResult{
			Sent:    resp.NotificationSent,
			Message: resp.NotificationMessage,
		},
	}
}

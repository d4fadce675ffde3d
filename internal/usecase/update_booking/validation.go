package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Attendees < 0 {
		return fmt.Errorf("%w: attendees must not be negative", ErrInvalidInput)
	}

	if req.Attendees > domain.MaxAttendees {
		return fmt.Errorf("%w: attendees must not exceed %d", ErrInvalidInput, domain.MaxAttendees)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

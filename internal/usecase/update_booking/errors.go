package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrEventNotFound возвращается, когда мероприятие бронирования не найдено
	ErrEventNotFound = errors.New("update_booking: event not found")

	// ErrCapacityExceeded возвращается, когда мест на мероприятии не хватает
	ErrCapacityExceeded = errors.New("update_booking: not enough remaining capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

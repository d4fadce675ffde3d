package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrEventNotFound возвращается, когда мероприятие не найдено
	ErrEventNotFound = errors.New("create_booking: event not found")

	// ErrCapacityExceeded возвращается, когда мест на мероприятии не хватает
	ErrCapacityExceeded = errors.New("create_booking: not enough remaining capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

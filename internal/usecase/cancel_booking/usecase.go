package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/booking"
)

// UseCase use case для отмены бронирования.
// Бронирование удаляется физически; после удаления клиенту
// безусловно отправляется уведомление об отмене. Если клиента или
// мероприятие не удалось разрезолвить, шаг уведомления пропускается,
// удаление при этом остается в силе.
type UseCase struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	eventRepo    EventRepository
	notifier     Notifier
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	eventRepo EventRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		eventRepo:    eventRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// 1. Читаем бронирование до удаления: после него ссылки на
	// клиента и мероприятие взять будет неоткуда
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Удаляем бронирование
	if err := uc.bookingRepo.Delete(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d disappeared before delete", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: successfully deleted booking id=%d", req.BookingID)

	// 3. Уведомление об отмене, best-effort
	resp := &Response{BookingID: req.BookingID}

	customer, event, ok := uc.resolveReferences(ctx, booking)
	if !ok {
		uc.logger.Warn("CancelBooking: skipping cancellation SMS for booking id=%d, references not resolved",
			req.BookingID)
		return resp, nil
	}

	smsResult := uc.notifier.SendBookingCancellation(
		ctx, customer, event.Name, event.StartTime.Format(domain.DateFormat))
	if !smsResult.Success {
		uc.logger.Warn("CancelBooking: cancellation SMS failed for booking id=%d: %s",
			req.BookingID, smsResult.Message)
	}

	resp.NotificationSent = smsResult.Success
	resp.NotificationMessage = smsResult.Message
	return resp, nil
}

// resolveReferences получает клиента и мероприятие удаленного
// бронирования. Любая ошибка означает пропуск уведомления, а не
// провал отмены.
func (uc *UseCase) resolveReferences(ctx context.Context, booking *domain.Booking) (*domain.Customer, *domain.Event, bool) {
	customer, err := uc.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		uc.logger.Warn("CancelBooking: failed to resolve customer id=%d: %v", booking.CustomerID, err)
		return nil, nil, false
	}

	event, err := uc.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		uc.logger.Warn("CancelBooking: failed to resolve event id=%d: %v", booking.EventID, err)
		return nil, nil, false
	}

	return customer, event, true
}

package send_event_reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
)

// UseCase use case рассылки напоминаний о мероприятии.
// Напоминание уходит каждому бронированию мероприятия, включая
// бронирования с нулем мест: они и существуют ради напоминаний.
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

// Execute выполняет рассылку напоминаний.
// Неудачные попытки считаются, но не прерывают рассылку остальным.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SendEventReminders: event=%d", req.EventID)

	if req.EventID <= 0 {
		return nil, fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}

	event, err := uc.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("SendEventReminders: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("SendEventReminders: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByEventID(ctx, req.EventID)
	if err != nil {
		uc.logger.Error("SendEventReminders: failed to get bookings for event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	eventTime := event.StartTime.Format(domain.TimeFormat)
	resp := &Response{EventID: req.EventID, Total: len(bookings)}

	for _, booking := range bookings {
		customer, err := uc.customerRepo.GetByID(ctx, booking.CustomerID)
		if err != nil {
			uc.logger.Warn("SendEventReminders: failed to resolve customer id=%d for booking id=%d: %v",
				booking.CustomerID, booking.ID, err)
			resp.Failed++
			continue
		}

		result := uc.notifier.SendEventReminder(ctx, customer, event.Name, eventTime)
		if result.Success {
			resp.Sent++
		} else {
			uc.logger.Warn("SendEventReminders: reminder failed for booking id=%d: %s",
				booking.ID, result.Message)
			resp.Failed++
		}
	}

	uc.logger.Info("SendEventReminders: event id=%d, %d sent, %d failed", req.EventID, resp.Sent, resp.Failed)
	return resp, nil
}

package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/capacity"
	"github.com/m04kA/SMC-EventsService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/booking"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
)

// UseCase use case для изменения бронирования.
// Изменение молчаливое: SMS при нем не отправляется.
type UseCase struct {
	bookingRepo BookingRepository
	eventRepo   EventRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	eventRepo EventRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case изменения бронирования.
// При проверке вместимости текущий вклад самого бронирования
// исключается: редактирование с 5 до 15 мест проверяет только
// разницу с остальными бронированиями.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, attendees=%d", req.BookingID, req.Attendees)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Чтение, проверка и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Текущее бронирование
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Мероприятие бронирования
		event, err := uc.eventRepo.GetByID(txCtx, current.EventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				uc.logger.Warn("UpdateBooking: event id=%d not found for booking id=%d",
					current.EventID, req.BookingID)
				return ErrEventNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get event id=%d: %v", current.EventID, err)
			return fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
		}

		// 2.3. Все бронирования мероприятия (с блокировкой строк)
		bookings, err := uc.bookingRepo.GetByEventID(txCtx, current.EventID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings for event id=%d: %v", current.EventID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.4. Решение о вместимости без учета собственного вклада
		decision := capacity.CanAccept(event.Capacity, bookings, req.Attendees, &req.BookingID)
		if !decision.Accepted {
			uc.logger.Warn("UpdateBooking: capacity exceeded for booking id=%d: requested=%d, available=%d",
				req.BookingID, decision.Requested, decision.Available)
			return fmt.Errorf("%w: requested %d, available %d, short by %d",
				ErrCapacityExceeded, decision.Requested, decision.Available, decision.Shortfall)
		}

		// 2.5. Сохраняем изменение
		updated, err := uc.bookingRepo.Update(txCtx, req.BookingID, &domain.Booking{
			Attendees: req.Attendees,
			Notes:     req.Notes,
		})
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		CustomerID: result.CustomerID,
		EventID:    result.EventID,
		Attendees:  result.Attendees,
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
	}, nil
}

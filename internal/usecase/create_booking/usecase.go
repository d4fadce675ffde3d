package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/capacity"
	"github.com/m04kA/SMC-EventsService/internal/domain"
	customerRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/customer"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	eventRepo    EventRepository
	notifier     Notifier
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	eventRepo EventRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		eventRepo:    eventRepo,
		notifier:     notifier,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и запись выполняются в сериализуемой транзакции,
// чтобы два конкурентных бронирования не заняли одни и те же места.
// Подтверждающее SMS отправляется после фиксации: его неудача
// логируется, но не откатывает бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, event=%d, attendees=%d",
		req.CustomerID, req.EventID, req.Attendees)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	customer, err := uc.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	var result *domain.Booking
	var event *domain.Event

	// 3. Проверка вместимости и запись в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Мероприятие читаем внутри транзакции: его вместимость
		// участвует в решении
		event, err = uc.eventRepo.GetByID(txCtx, req.EventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				uc.logger.Warn("CreateBooking: event id=%d not found", req.EventID)
				return ErrEventNotFound
			}
			uc.logger.Error("CreateBooking: failed to get event id=%d: %v", req.EventID, err)
			return fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
		}

		// 3.2. Текущие бронирования мероприятия (с блокировкой строк)
		bookings, err := uc.bookingRepo.GetByEventID(txCtx, req.EventID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for event id=%d: %v", req.EventID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.3. Решение о вместимости; нового бронирования еще нет,
		// исключать нечего
		decision := capacity.CanAccept(event.Capacity, bookings, req.Attendees, nil)
		if !decision.Accepted {
			uc.logger.Warn("CreateBooking: capacity exceeded for event id=%d: requested=%d, available=%d",
				req.EventID, decision.Requested, decision.Available)
			return fmt.Errorf("%w: requested %d, available %d, short by %d",
				ErrCapacityExceeded, decision.Requested, decision.Available, decision.Shortfall)
		}

		// 3.4. Сохраняем бронирование
		booking := &domain.Booking{
			CustomerID: req.CustomerID,
			EventID:    req.EventID,
			Attendees:  req.Attendees,
			Notes:      req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 4. Подтверждающее SMS после фиксации транзакции
	smsResult := uc.notifier.SendBookingConfirmation(
		ctx, customer, event.Name, event.StartTime.Format(domain.DateFormat))
	if !smsResult.Success {
		uc.logger.Warn("CreateBooking: confirmation SMS failed for booking id=%d: %s",
			result.ID, smsResult.Message)
	}

	return &Response{
		ID:                  result.ID,
		CustomerID:          result.CustomerID,
		EventID:             result.EventID,
		Attendees:           result.Attendees,
		Notes:               result.Notes,
		CreatedAt:           result.CreatedAt,
		NotificationSent:    smsResult.Success,
		NotificationMessage: smsResult.Message,
	}, nil
}

package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/booking"
	eventRepoPkg "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
	"github.com/m04kA/SMC-EventsService/internal/service/bookings/models"
)

// Service сервис чтения бронирований.
// Создание, изменение и отмена идут через use cases: там проверка
// вместимости и уведомления, здесь только чтение со справочными
// именами клиента и мероприятия.
type Service struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	eventRepo    EventRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	eventRepo EventRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		eventRepo:    eventRepo,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.customerName(ctx, booking.CustomerID), s.eventName(ctx, booking.EventID)), nil
}

// List получает бронирования с фильтрами по мероприятию и клиенту
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	customerNames := s.customerNames(ctx)
	eventNames := s.eventNames(ctx)

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		var customerName, eventName *string
		if name, ok := customerNames[b.CustomerID]; ok {
			customerName = &name
		}
		if name, ok := eventNames[b.EventID]; ok {
			eventName = &name
		}
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, customerName, eventName))
	}
	return resp, nil
}

// customerName резолвит имя клиента; удаленный клиент дает nil
func (s *Service) customerName(ctx context.Context, customerID int64) *string {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		s.logger.Warn("customerName: failed to resolve customer id=%d: %v", customerID, err)
		return nil
	}
	name := customer.FullName()
	return &name
}

// eventName резолвит название мероприятия; удаленное мероприятие дает nil
func (s *Service) eventName(ctx context.Context, eventID int64) *string {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Warn("eventName: failed to resolve event id=%d: %v", eventID, err)
		return nil
	}
	return &event.Name
}

// customerNames строит карту имен одним запросом списка
func (s *Service) customerNames(ctx context.Context) map[int64]string {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Warn("customerNames: failed to list customers: %v", err)
		return nil
	}
	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.FullName()
	}
	return names
}

// eventNames строит карту названий одним запросом списка
func (s *Service) eventNames(ctx context.Context) map[int64]string {
	events, err := s.eventRepo.List(ctx, eventRepoPkg.EventsFilter{})
	if err != nil {
		s.logger.Warn("eventNames: failed to list events: %v", err)
		return nil
	}
	names := make(map[int64]string, len(events))
	for _, e := range events {
		names[e.ID] = e.Name
	}
	return names
}

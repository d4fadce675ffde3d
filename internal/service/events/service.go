package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-EventsService/internal/capacity"
	"github.com/m04kA/SMC-EventsService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/category"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
	"github.com/m04kA/SMC-EventsService/internal/service/events/models"
)

// Service сервис для работы с мероприятиями
type Service struct {
	eventRepo    EventRepository
	categoryRepo CategoryRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса мероприятий
func NewService(
	eventRepo EventRepository,
	categoryRepo CategoryRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Create создает новое мероприятие.
// Категория обязана существовать на момент создания; дальше мероприятие
// живет своей жизнью и от категории не зависит.
func (s *Service) Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error) {
	if err := validateEventInput(req.Name, req.Capacity, req.Notes); err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("Create: category id=%d not found", req.CategoryID)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("Create: category repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - category repository error: %v", ErrInternal, err)
	}

	event, err := s.eventRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	event.Category = category

	s.logger.Info("Create: created event id=%d, name=%s, capacity=%d", event.ID, event.Name, event.Capacity)
	// Новое мероприятие еще без бронирований
	return models.FromDomainEvent(event, event.Capacity), nil
}

// GetByID получает мероприятие с остатком мест
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.resolveCategory(ctx, event)

	remaining, err := s.remainingCapacity(ctx, event)
	if err != nil {
		return nil, err
	}

	return models.FromDomainEvent(event, remaining), nil
}

// List получает мероприятия с фильтрацией и остатком мест
func (s *Service) List(ctx context.Context, req *models.ListEventsRequest) (*models.EventListResponse, error) {
	filter := eventRepo.EventsFilter{
		CategoryID:   req.CategoryID,
		UpcomingOnly: req.UpcomingOnly,
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Категории резолвим одним списком, а не по одной на мероприятие
	categoryNames := s.categoryNames(ctx)

	resp := &models.EventListResponse{
		Events: make([]models.EventResponse, 0, len(events)),
	}
	for _, event := range events {
		remaining, err := s.remainingCapacity(ctx, event)
		if err != nil {
			return nil, err
		}

		item := models.FromDomainEvent(event, remaining)
		if name, ok := categoryNames[event.CategoryID]; ok {
			item.CategoryName = &name
		}
		resp.Events = append(resp.Events, *item)
	}

	return resp, nil
}

// Update обновляет мероприятие
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEventRequest) (*models.EventResponse, error) {
	if err := validateEventInput(req.Name, req.Capacity, req.Notes); err != nil {
		s.logger.Warn("Update: invalid input for event id=%d: %v", id, err)
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("Update: category id=%d not found", req.CategoryID)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("Update: category repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - category repository error: %v", ErrInternal, err)
	}

	event, err := s.eventRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Update: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("Update: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.resolveCategory(ctx, event)

	remaining, err := s.remainingCapacity(ctx, event)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: updated event id=%d", id)
	return models.FromDomainEvent(event, remaining), nil
}

// Delete удаляет мероприятие
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found", id)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted event id=%d", id)
	return nil
}

// remainingCapacity пересчитывает остаток мест по текущим бронированиям.
// Для показа остаток прижимается к нулю.
func (s *Service) remainingCapacity(ctx context.Context, event *domain.Event) (int, error) {
	bookings, err := s.bookingRepo.GetByEventID(ctx, event.ID)
	if err != nil {
		s.logger.Error("remainingCapacity: booking repository error for event id=%d: %v", event.ID, err)
		return 0, fmt.Errorf("%w: remainingCapacity - booking repository error: %v", ErrInternal, err)
	}

	return capacity.DisplayRemaining(event.Capacity, bookings), nil
}

// resolveCategory подставляет категорию мероприятия.
// Ошибка резолва не фатальна: категория могла быть удалена,
// мероприятие при этом остается валидным.
func (s *Service) resolveCategory(ctx context.Context, event *domain.Event) {
	category, err := s.categoryRepo.GetByID(ctx, event.CategoryID)
	if err != nil {
		if !errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("resolveCategory: category repository error for event id=%d: %v", event.ID, err)
		}
		return
	}
	event.Category = category
}

func (s *Service) categoryNames(ctx context.Context) map[int64]string {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Warn("categoryNames: category repository error: %v", err)
		return nil
	}

	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

func validateEventInput(name string, eventCapacity int, notes *string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if eventCapacity <= 0 || eventCapacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between 1 and %d", ErrInvalidInput, domain.MaxCapacity)
	}
	if notes != nil && len(*notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	return nil
}

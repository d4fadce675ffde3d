package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/category"
	"github.com/m04kA/SMC-EventsService/internal/service/categories/models"
)

// Service сервис для работы с категориями мероприятий
type Service struct {
	categoryRepo CategoryRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса категорий
func NewService(categoryRepo CategoryRepository, logger Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create создает новую категорию
func (s *Service) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	if err := validateCategoryInput(req.Name, req.DefaultCapacity, req.DefaultStartTime, req.Notes); err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, err
	}

	category, err := s.categoryRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created category id=%d, name=%s", category.ID, category.Name)
	return models.FromDomainCategory(category), nil
}

// GetByID получает категорию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("GetByID: category id=%d not found", id)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("GetByID: repository error for category id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategory(category), nil
}

// List получает все категории, отсортированные по названию
func (s *Service) List(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategoryList(categories), nil
}

// Update обновляет категорию
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.CategoryResponse, error) {
	if err := validateCategoryInput(req.Name, req.DefaultCapacity, req.DefaultStartTime, req.Notes); err != nil {
		s.logger.Warn("Update: invalid input for category id=%d: %v", id, err)
		return nil, err
	}

	category, err := s.categoryRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("Update: category id=%d not found", id)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("Update: repository error for category id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated category id=%d", id)
	return models.FromDomainCategory(category), nil
}

// Delete удаляет категорию.
// Существующие мероприятия сохраняют свои значения: категория лишь
// шаблон для предзаполнения формы.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryNotFound) {
			s.logger.Warn("Delete: category id=%d not found", id)
			return ErrCategoryNotFound
		}
		s.logger.Error("Delete: repository error for category id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted category id=%d", id)
	return nil
}

func validateCategoryInput(name string, defaultCapacity int, defaultStartTime string, notes *string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if defaultCapacity <= 0 || defaultCapacity > domain.MaxCapacity {
		return fmt.Errorf("%w: default capacity must be between 1 and %d", ErrInvalidInput, domain.MaxCapacity)
	}
	if _, err := time.Parse(domain.TimeFormat, defaultStartTime); err != nil {
		return fmt.Errorf("%w: default start time must be in HH:MM format", ErrInvalidInput)
	}
	if notes != nil && len(*notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	return nil
}

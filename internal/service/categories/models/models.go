package models

import (
	"time"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// Request модели

// CreateCategoryRequest запрос на создание категории мероприятий
type CreateCategoryRequest struct {
	Name             string  `json:"name"`
	DefaultCapacity  int     `json:"defaultCapacity"`
	DefaultStartTime string  `json:"defaultStartTime"` // "14:00"
	Notes            *string `json:"notes,omitempty"`
}

// UpdateCategoryRequest запрос на обновление категории мероприятий
type UpdateCategoryRequest struct {
	Name             string  `json:"name"`
	DefaultCapacity  int     `json:"defaultCapacity"`
	DefaultStartTime string  `json:"defaultStartTime"`
	Notes            *string `json:"notes,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateCategoryRequest) ToDomain() *domain.EventCategory {
	return &domain.EventCategory{
		Name:             r.Name,
		DefaultCapacity:  r.DefaultCapacity,
		DefaultStartTime: r.DefaultStartTime,
		Notes:            r.Notes,
	}
}

// ToDomain конвертирует request в domain модель
func (r *UpdateCategoryRequest) ToDomain() *domain.EventCategory {
	return &domain.EventCategory{
		Name:             r.Name,
		DefaultCapacity:  r.DefaultCapacity,
		DefaultStartTime: r.DefaultStartTime,
		Notes:            r.Notes,
	}
}

// Response модели

// CategoryResponse ответ с данными категории
type CategoryResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	DefaultCapacity  int       `json:"defaultCapacity"`
	DefaultStartTime string    `json:"defaultStartTime"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainCategory конвертирует domain модель в DTO
func FromDomainCategory(c *domain.EventCategory) *CategoryResponse {
	if c == nil {
		return nil
	}

	return &CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		DefaultCapacity:  c.DefaultCapacity,
		DefaultStartTime: c.DefaultStartTime,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
}

// FromDomainCategoryList конвертирует список domain моделей в DTO
func FromDomainCategoryList(categories []*domain.EventCategory) *CategoryListResponse {
	resp := &CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, *FromDomainCategory(c))
	}
	return resp
}

package models

import (
	"time"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// Request модели

// CreateEventRequest запрос на создание мероприятия
type CreateEventRequest struct {
	Name       string    `json:"name"`
	CategoryID int64     `json:"categoryId"`
	Capacity   int       `json:"capacity"`
	StartTime  time.Time `json:"startTime"`
	Notes      *string   `json:"notes,omitempty"`
}

// UpdateEventRequest запрос на обновление мероприятия
type UpdateEventRequest struct {
	Name       string    `json:"name"`
	CategoryID int64     `json:"categoryId"`
	Capacity   int       `json:"capacity"`
	StartTime  time.Time `json:"startTime"`
	Notes      *string   `json:"notes,omitempty"`
}

// ListEventsRequest параметры фильтрации списка мероприятий
type ListEventsRequest struct {
	CategoryID   *int64 `json:"categoryId,omitempty"`
	UpcomingOnly bool   `json:"upcomingOnly,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateEventRequest) ToDomain() *domain.Event {
	return &domain.Event{
		Name:       r.Name,
		CategoryID: r.CategoryID,
		Capacity:   r.Capacity,
		StartTime:  r.StartTime,
		Notes:      r.Notes,
	}
}

// ToDomain конвертирует request в domain модель
func (r *UpdateEventRequest) ToDomain() *domain.Event {
	return &domain.Event{
		Name:       r.Name,
		CategoryID: r.CategoryID,
		Capacity:   r.Capacity,
		StartTime:  r.StartTime,
		Notes:      r.Notes,
	}
}

// Response модели

// EventResponse ответ с данными мероприятия.
// RemainingCapacity пересчитывается по бронированиям при каждом
// запросе и никогда не бывает отрицательным в ответе.
type EventResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	CategoryID        int64     `json:"categoryId"`
	CategoryName      *string   `json:"categoryName,omitempty"`
	Capacity          int       `json:"capacity"`
	RemainingCapacity int       `json:"remainingCapacity"`
	StartTime         time.Time `json:"startTime"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// EventListResponse ответ со списком мероприятий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.Event, remainingCapacity int) *EventResponse {
	if e == nil {
		return nil
	}

	resp := &EventResponse{
		ID:                e.ID,
		Name:              e.Name,
		CategoryID:        e.CategoryID,
		Capacity:          e.Capacity,
		RemainingCapacity: remainingCapacity,
		StartTime:         e.StartTime,
		Notes:             e.Notes,
		CreatedAt:         e.CreatedAt,
	}

	if e.Category != nil {
		name := e.Category.Name
		resp.CategoryName = &name
	}

	return resp
}

package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	storeevent "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
)

// EventRepository in-memory реализация репозитория мероприятий
type EventRepository struct {
	store *Store
}

// NewEventRepository создает репозиторий мероприятий поверх хранилища
func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

// Create создает новое мероприятие
func (r *EventRepository) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextEventID++
	event.ID = r.store.nextEventID
	event.CreatedAt = nowFn()
	r.store.events[event.ID] = cloneEvent(event)

	return event, nil
}

// GetByID получает мероприятие по ID
func (r *EventRepository) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	event, ok := r.store.events[id]
	if !ok {
		return nil, storeevent.ErrEventNotFound
	}

	return cloneEvent(event), nil
}

// List получает мероприятия с фильтрацией, отсортированные по времени начала.
// UpcomingOnly отсекает по началу текущего дня, как и Postgres-реализация.
func (r *EventRepository) List(_ context.Context, filter storeevent.EventsFilter) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	now := nowFn()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	events := make([]*domain.Event, 0, len(r.store.events))
	for _, e := range r.store.events {
		if filter.CategoryID != nil && e.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.UpcomingOnly && e.StartTime.Before(startOfDay) {
			continue
		}
		events = append(events, cloneEvent(e))
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})

	return events, nil
}

// Update обновляет мероприятие
func (r *EventRepository) Update(_ context.Context, id int64, event *domain.Event) (*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.events[id]
	if !ok {
		return nil, storeevent.ErrEventNotFound
	}

	event.ID = id
	event.CreatedAt = existing.CreatedAt
	r.store.events[id] = cloneEvent(event)

	return event, nil
}

// Delete удаляет мероприятие
func (r *EventRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[id]; !ok {
		return storeevent.ErrEventNotFound
	}

	delete(r.store.events, id)
	return nil
}

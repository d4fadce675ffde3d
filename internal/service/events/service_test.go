package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	categoryRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/category"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
	"github.com/m04kA/SMC-EventsService/internal/service/events/models"
	"github.com/m04kA/SMC-EventsService/pkg/ptr"
)

type fakeEventRepo struct {
	events map[int64]*domain.Event
}

func (r *fakeEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	e.ID = int64(len(r.events) + 1)
	r.events[e.ID] = e
	return e, nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEventRepo) List(_ context.Context, _ eventRepo.EventsFilter) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, id int64, e *domain.Event) (*domain.Event, error) {
	if _, ok := r.events[id]; !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	e.ID = id
	r.events[id] = e
	return e, nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return eventRepo.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[int64]*domain.EventCategory
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.EventCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, categoryRepo.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*domain.EventCategory, error) {
	out := make([]*domain.EventCategory, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

type fakeBookingRepo struct {
	byEvent map[int64][]*domain.Booking
}

func (r *fakeBookingRepo) GetByEventID(_ context.Context, eventID int64) ([]*domain.Booking, error) {
	return r.byEvent[eventID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeEventRepo, *fakeCategoryRepo, *fakeBookingRepo) {
	er := &fakeEventRepo{events: make(map[int64]*domain.Event)}
	cr := &fakeCategoryRepo{categories: map[int64]*domain.EventCategory{
		1: {ID: 1, Name: "Conference", DefaultCapacity: 150, DefaultStartTime: "10:00"},
	}}
	br := &fakeBookingRepo{byEvent: make(map[int64][]*domain.Booking)}
	return NewService(er, cr, br, nopLogger{}), er, cr, br
}

func TestService_GetByID_RemainingCapacity(t *testing.T) {
	svc, er, _, br := newTestService()

	er.events[1] = &domain.Event{ID: 1, Name: "Tech Summit", CategoryID: 1, Capacity: 50, StartTime: time.Now().Add(24 * time.Hour)}
	br.byEvent[1] = []*domain.Booking{
		{ID: 1, EventID: 1, Attendees: 10},
		{ID: 2, EventID: 1, Attendees: 25},
		{ID: 3, EventID: 1, Attendees: 0}, // reminder-only, не занимает мест
	}

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Capacity)
	assert.Equal(t, 15, resp.RemainingCapacity)
	require.NotNil(t, resp.CategoryName)
	assert.Equal(t, "Conference", *resp.CategoryName)
}

func TestService_GetByID_RemainingNeverNegative(t *testing.T) {
	svc, er, _, br := newTestService()

	// Переполненное мероприятие после уменьшения вместимости
	er.events[1] = &domain.Event{ID: 1, Name: "Tech Summit", CategoryID: 1, Capacity: 10, StartTime: time.Now().Add(24 * time.Hour)}
	br.byEvent[1] = []*domain.Booking{
		{ID: 1, EventID: 1, Attendees: 12},
	}

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.RemainingCapacity)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestService_Create_UnknownCategory(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), &models.CreateEventRequest{
		Name:       "Orphan Event",
		CategoryID: 42,
		Capacity:   10,
		StartTime:  time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newTestService()

	tests := []struct {
		name string
		req  *models.CreateEventRequest
	}{
		{
			name: "empty name",
			req:  &models.CreateEventRequest{Name: "  ", CategoryID: 1, Capacity: 10},
		},
		{
			name: "zero capacity",
			req:  &models.CreateEventRequest{Name: "Event", CategoryID: 1, Capacity: 0},
		},
		{
			name: "negative capacity",
			req:  &models.CreateEventRequest{Name: "Event", CategoryID: 1, Capacity: -5},
		},
		{
			name: "capacity above limit",
			req:  &models.CreateEventRequest{Name: "Event", CategoryID: 1, Capacity: domain.MaxCapacity + 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Create_NewEventHasFullCapacity(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.Create(context.Background(), &models.CreateEventRequest{
		Name:       "Fresh Event",
		CategoryID: 1,
		Capacity:   30,
		StartTime:  time.Now().Add(48 * time.Hour),
		Notes:      ptr.Ptr("no bookings yet"),
	})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.RemainingCapacity)
}

func TestService_Delete_MissingCategoryDoesNotBreakReads(t *testing.T) {
	svc, er, cr, _ := newTestService()

	er.events[1] = &domain.Event{ID: 1, Name: "Legacy Event", CategoryID: 7, Capacity: 20, StartTime: time.Now().Add(24 * time.Hour)}
	delete(cr.categories, 7)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, resp.CategoryName)
}

package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/customer"
	eventRepoPkg "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.EventID != nil && b.EventID != *filter.EventID {
			continue
		}
		if filter.CustomerID != nil && b.CustomerID != *filter.CustomerID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

type fakeEventRepo struct {
	events map[int64]*domain.Event
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, eventRepoPkg.ErrEventNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) List(_ context.Context, _ eventRepoPkg.EventsFilter) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeBookingRepo, *fakeCustomerRepo, *fakeEventRepo) {
	br := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, CustomerID: 1, EventID: 1, Attendees: 2, CreatedAt: time.Now()},
		2: {ID: 2, CustomerID: 2, EventID: 1, Attendees: 4, CreatedAt: time.Now()},
		3: {ID: 3, CustomerID: 1, EventID: 2, Attendees: 1, CreatedAt: time.Now()},
	}}
	cr := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, FirstName: "John", LastName: "Doe", MobileNumber: "+14155552671"},
		2: {ID: 2, FirstName: "Jane", LastName: "Smith", MobileNumber: "+14155552672"},
	}}
	er := &fakeEventRepo{events: map[int64]*domain.Event{
		1: {ID: 1, Name: "Summer Wedding", Capacity: 80, StartTime: time.Now().Add(24 * time.Hour)},
		2: {ID: 2, Name: "Tech Conference", Capacity: 120, StartTime: time.Now().Add(48 * time.Hour)},
	}}
	return NewService(br, cr, er, nopLogger{}), br, cr, er
}

func TestGetByID_ResolvesReferences(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "John Doe", *resp.CustomerName)
	require.NotNil(t, resp.EventName)
	assert.Equal(t, "Summer Wedding", *resp.EventName)
}

func TestGetByID_DeletedReferencesGiveNilNames(t *testing.T) {
	svc, _, cr, er := newTestService()
	delete(cr.customers, 1)
	delete(er.events, 1)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, resp.CustomerName)
	assert.Nil(t, resp.EventName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_FiltersByEventAndCustomer(t *testing.T) {
	svc, _, _, _ := newTestService()

	eventID := int64(1)
	resp, err := svc.List(context.Background(), domain.BookingsFilter{EventID: &eventID})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	customerID := int64(1)
	resp, err = svc.List(context.Background(), domain.BookingsFilter{CustomerID: &customerID})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	for _, b := range resp.Bookings {
		assert.Equal(t, customerID, b.CustomerID)
		require.NotNil(t, b.CustomerName)
		assert.Equal(t, "John Doe", *b.CustomerName)
	}
}

func TestList_ResolvesNamesViaSingleListCalls(t *testing.T) {
	svc, _, cr, _ := newTestService()
	delete(cr.customers, 2)

	resp, err := svc.List(context.Background(), domain.BookingsFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)

	for _, b := range resp.Bookings {
		if b.CustomerID == 2 {
			assert.Nil(t, b.CustomerName)
		} else {
			assert.NotNil(t, b.CustomerName)
		}
	}
}

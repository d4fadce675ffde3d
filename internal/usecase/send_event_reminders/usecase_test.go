package send_event_reminders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	customerRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/customer"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
	notifmodels "github.com/m04kA/SMC-EventsService/internal/service/notifications/models"
)

type fakeBookingRepo struct {
	byEvent map[int64][]*domain.Booking
}

func (r *fakeBookingRepo) GetByEventID(_ context.Context, eventID int64) ([]*domain.Booking, error) {
	return r.byEvent[eventID], nil
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

type fakeEventRepo struct {
	events map[int64]*domain.Event
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	return e, nil
}

type fakeNotifier struct {
	failFor map[int64]bool // клиенты, для которых отправка неудачна
	times   []string
	sentTo  []int64
}

func (n *fakeNotifier) SendEventReminder(_ context.Context, customer *domain.Customer, _, eventTime string) *notifmodels.SendResult {
	n.sentTo = append(n.sentTo, customer.ID)
	n.times = append(n.times, eventTime)
	if n.failFor[customer.ID] {
		return &notifmodels.SendResult{Success: false, Message: "Failed to send SMS: timeout"}
	}
	return &notifmodels.SendResult{Success: true, Message: "SMS sent successfully. Message SID: SM1"}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase() (*UseCase, *fakeBookingRepo, *fakeCustomerRepo, *fakeNotifier) {
	br := &fakeBookingRepo{byEvent: map[int64][]*domain.Booking{
		1: {
			{ID: 1, CustomerID: 1, EventID: 1, Attendees: 2},
			{ID: 2, CustomerID: 2, EventID: 1, Attendees: 4},
			{ID: 3, CustomerID: 3, EventID: 1, Attendees: 0}, // только напоминание
		},
	}}
	cr := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, FirstName: "John", LastName: "Doe", MobileNumber: "07911123456"},
		2: {ID: 2, FirstName: "Jane", LastName: "Smith", MobileNumber: "07911123457"},
		3: {ID: 3, FirstName: "Emily", LastName: "Williams", MobileNumber: "07911123458"},
	}}
	er := &fakeEventRepo{events: map[int64]*domain.Event{
		1: {ID: 1, Name: "Tech Conference", Capacity: 120, StartTime: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)},
	}}
	notifier := &fakeNotifier{failFor: make(map[int64]bool)}
	uc := NewUseCase(br, cr, er, notifier, nopLogger{})
	return uc, br, cr, notifier
}

func TestExecute_SendsToEveryBooking(t *testing.T) {
	uc, _, _, notifier := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{EventID: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 3, resp.Sent)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, "Reminders sent: 3 successful, 0 failed.", resp.Summary())

	// Напоминание получает и бронирование с нулем мест
	assert.Equal(t, []int64{1, 2, 3}, notifier.sentTo)
	// Время мероприятия в формате HH:MM
	assert.Equal(t, "10:00", notifier.times[0])
}

func TestExecute_CountsFailures(t *testing.T) {
	uc, _, cr, notifier := newTestUseCase()
	notifier.failFor[2] = true
	delete(cr.customers, 3)

	resp, err := uc.Execute(context.Background(), &Request{EventID: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, 2, resp.Failed)

	// Нерезолвящийся клиент не дал вызова notifier
	assert.Equal(t, []int64{1, 2}, notifier.sentTo)
}

func TestExecute_NoBookings(t *testing.T) {
	uc, br, _, notifier := newTestUseCase()
	br.byEvent[1] = nil

	resp, err := uc.Execute(context.Background(), &Request{EventID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, "Reminders sent: 0 successful, 0 failed.", resp.Summary())
	assert.Empty(t, notifier.sentTo)
}

func TestExecute_EventNotFound(t *testing.T) {
	uc, _, _, notifier := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{EventID: 99})
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Empty(t, notifier.sentTo)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{EventID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

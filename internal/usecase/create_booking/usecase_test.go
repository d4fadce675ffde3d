package create_booking

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
	created []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = int64(len(r.created) + 1)
	b.CreatedAt = time.Now()
	r.created = append(r.created, b)
	return b, nil
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
	result *notifmodels.SendResult
	calls  []string // имена мероприятий из вызовов
}

func (n *fakeNotifier) SendBookingConfirmation(_ context.Context, _ *domain.Customer, eventName, _ string) *notifmodels.SendResult {
	n.calls = append(n.calls, eventName)
	if n.result != nil {
		return n.result
	}
	return &notifmodels.SendResult{Success: true, Message: "SMS sent successfully. Message SID: SM1"}
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookingsWithAttendees(eventID int64, attendees ...int) []*domain.Booking {
	out := make([]*domain.Booking, 0, len(attendees))
	for i, a := range attendees {
		out = append(out, &domain.Booking{ID: int64(100 + i), EventID: eventID, CustomerID: 1, Attendees: a})
	}
	return out
}

func newTestUseCase() (*UseCase, *fakeBookingRepo, *fakeCustomerRepo, *fakeEventRepo, *fakeNotifier) {
	br := &fakeBookingRepo{byEvent: make(map[int64][]*domain.Booking)}
	cr := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, FirstName: "Jane", LastName: "Smith", MobileNumber: "07911123456"},
	}}
	er := &fakeEventRepo{events: map[int64]*domain.Event{
		1: {ID: 1, Name: "Tech Summit", Capacity: 50, StartTime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
	}}
	notifier := &fakeNotifier{}
	uc := NewUseCase(br, cr, er, notifier, passthroughTxManager{}, nopLogger{})
	return uc, br, cr, er, notifier
}

func TestExecute_FitsExactly(t *testing.T) {
	uc, br, _, _, notifier := newTestUseCase()
	br.byEvent[1] = bookingsWithAttendees(1, 20, 28) // занято 48 из 50

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: 1, EventID: 1, Attendees: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Attendees)
	assert.True(t, resp.NotificationSent)
	require.Len(t, br.created, 1)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "Tech Summit", notifier.calls[0])
}

func TestExecute_RejectsWithShortfall(t *testing.T) {
	uc, br, _, _, notifier := newTestUseCase()
	br.byEvent[1] = bookingsWithAttendees(1, 20, 28) // занято 48 из 50

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 1, EventID: 1, Attendees: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "requested 3")
	assert.Contains(t, err.Error(), "available 2")
	assert.Contains(t, err.Error(), "short by 1")

	// Ни записи, ни SMS
	assert.Empty(t, br.created)
	assert.Empty(t, notifier.calls)
}

func TestExecute_ZeroAttendeesAlwaysAccepted(t *testing.T) {
	uc, br, _, _, _ := newTestUseCase()
	br.byEvent[1] = bookingsWithAttendees(1, 50) // мероприятие заполнено

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: 1, EventID: 1, Attendees: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Attendees)
	require.Len(t, br.created, 1)
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	uc, br, _, _, notifier := newTestUseCase()
	notifier.result = &notifmodels.SendResult{Success: false, Message: "Failed to send SMS: connection refused"}

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: 1, EventID: 1, Attendees: 5})
	require.NoError(t, err)

	// Бронирование создано, несмотря на неудачное SMS
	require.Len(t, br.created, 1)
	assert.False(t, resp.NotificationSent)
	assert.Contains(t, resp.NotificationMessage, "Failed to send SMS")
}

func TestExecute_CustomerNotFound(t *testing.T) {
	uc, br, _, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 99, EventID: 1, Attendees: 1})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Empty(t, br.created)
}

func TestExecute_EventNotFound(t *testing.T) {
	uc, br, _, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 1, EventID: 99, Attendees: 1})
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Empty(t, br.created)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero customer id", req: &Request{CustomerID: 0, EventID: 1, Attendees: 1}},
		{name: "zero event id", req: &Request{CustomerID: 1, EventID: 0, Attendees: 1}},
		{name: "negative attendees", req: &Request{CustomerID: 1, EventID: 1, Attendees: -1}},
		{name: "too many attendees", req: &Request{CustomerID: 1, EventID: 1, Attendees: domain.MaxAttendees + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ZeroCapacityRejectsSeats(t *testing.T) {
	uc, br, _, er, _ := newTestUseCase()
	er.events[2] = &domain.Event{ID: 2, Name: "Waitlist Only", Capacity: 0, StartTime: time.Now().Add(24 * time.Hour)}

	_, err := uc.Execute(context.Background(), &Request{CustomerID: 1, EventID: 2, Attendees: 1})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Empty(t, br.created)
}

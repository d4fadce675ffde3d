package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/customer"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
	"github.com/m04kA/SMC-EventsService/internal/integrations/twilio"
	"github.com/m04kA/SMC-EventsService/internal/service/notifications"
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

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
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

// Фейки для настоящего диспетчера уведомлений: отмена проверяется
// насквозь, до записи в журнал SMS.

type fakeSMSClient struct {
	sendErr error
	sent    []string
}

func (c *fakeSMSClient) IsConfigured() bool { return true }

func (c *fakeSMSClient) SendMessage(_ context.Context, _, body string) (*twilio.SendResult, error) {
	if c.sendErr != nil {
		return nil, c.sendErr
	}
	c.sent = append(c.sent, body)
	return &twilio.SendResult{SID: "SM1"}, nil
}

func (c *fakeSMSClient) CheckHealth(_ context.Context) (*twilio.HealthResult, error) {
	return &twilio.HealthResult{}, nil
}

type fakeSMSLogRepo struct {
	entries []*domain.SMSLog
}

func (r *fakeSMSLogRepo) Insert(_ context.Context, entry *domain.SMSLog) (*domain.SMSLog, error) {
	copied := *entry
	r.entries = append(r.entries, &copied)
	return entry, nil
}

type fakeMetrics struct{}

func (fakeMetrics) ObserveSMSAttempt(string, bool) {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase() (*UseCase, *fakeBookingRepo, *fakeCustomerRepo, *fakeSMSClient, *fakeSMSLogRepo) {
	br := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, CustomerID: 1, EventID: 1, Attendees: 2},
	}}
	cr := &fakeCustomerRepo{customers: map[int64]*domain.Customer{
		1: {ID: 1, FirstName: "Jane", LastName: "Doe", MobileNumber: "07911123456"},
	}}
	er := &fakeEventRepo{events: map[int64]*domain.Event{
		1: {ID: 1, Name: "Tech Summit", Capacity: 100, StartTime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
	}}

	client := &fakeSMSClient{}
	logRepo := &fakeSMSLogRepo{}
	notifier := notifications.NewService(client, logRepo, fakeMetrics{}, nopLogger{}, "+44", "07")

	uc := NewUseCase(br, cr, er, notifier, nopLogger{})
	return uc, br, cr, client, logRepo
}

func TestExecute_CancellationSendsSMS(t *testing.T) {
	uc, br, _, client, logRepo := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	require.NoError(t, err)
	assert.True(t, resp.NotificationSent)

	// Бронирование удалено
	assert.NotContains(t, br.bookings, int64(1))

	// Ровно одна запись журнала с текстом отмены
	require.Len(t, logRepo.entries, 1)
	entry := logRepo.entries[0]
	assert.True(t, entry.Success)
	assert.Contains(t, entry.MessageBody, "Jane Doe")
	assert.Contains(t, entry.MessageBody, "Tech Summit")
	assert.Contains(t, entry.MessageBody, "2025-03-01")
	assert.Contains(t, entry.MessageBody, "has been cancelled")

	require.Len(t, client.sent, 1)
	assert.Equal(t, entry.MessageBody, client.sent[0])
}

func TestExecute_SMSFailureDoesNotFailCancellation(t *testing.T) {
	uc, br, _, client, logRepo := newTestUseCase()
	client.sendErr = errors.New("connection refused")

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	require.NoError(t, err)

	// Удаление в силе, журнал зафиксировал неудачу
	assert.NotContains(t, br.bookings, int64(1))
	assert.False(t, resp.NotificationSent)
	assert.Contains(t, resp.NotificationMessage, "Failed to send SMS")
	require.Len(t, logRepo.entries, 1)
	assert.False(t, logRepo.entries[0].Success)
}

func TestExecute_SkipsNotificationWhenCustomerUnresolved(t *testing.T) {
	uc, br, cr, client, logRepo := newTestUseCase()
	delete(cr.customers, 1)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1})
	require.NoError(t, err)

	// Удаление прошло, уведомление пропущено целиком
	assert.NotContains(t, br.bookings, int64(1))
	assert.False(t, resp.NotificationSent)
	assert.Empty(t, client.sent)
	assert.Empty(t, logRepo.entries)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc, _, _, _, logRepo := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 99})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, logRepo.entries)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
